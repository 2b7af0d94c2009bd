package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"carrental/internal/rental"
)

// Menu drives the interactive session against one rental.System. All
// reads go through the scanner so tests can script a whole session.
type Menu struct {
	sys *rental.System
	in  *bufio.Scanner
	out io.Writer
}

func New(sys *rental.System, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		sys: sys,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run loops the menu until the user quits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "===== Car Rental =====")
		fmt.Fprintln(m.out, "1. List all cars")
		fmt.Fprintln(m.out, "2. List available cars")
		fmt.Fprintln(m.out, "3. Rent a car")
		fmt.Fprintln(m.out, "4. Return a car")
		fmt.Fprintln(m.out, "5. List customers")
		fmt.Fprintln(m.out, "0. Quit")

		choice, ok := m.readInt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			m.listAllCars()
		case 2:
			m.listAvailableCars()
		case 3:
			m.rentCar()
		case 4:
			m.returnCar()
		case 5:
			m.listCustomers()
		case 0:
			fmt.Fprintln(m.out, "Bye.")
			return
		default:
			fmt.Fprintln(m.out, "Unknown option.")
		}
	}
}

func (m *Menu) listAllCars() {
	cars := m.sys.AllCars()
	if len(cars) == 0 {
		fmt.Fprintln(m.out, "The fleet is empty.")
		return
	}
	for _, car := range cars {
		fmt.Fprintln(m.out, car)
	}
}

func (m *Menu) listAvailableCars() {
	cars := m.sys.AvailableCars()
	if len(cars) == 0 {
		fmt.Fprintln(m.out, "No cars available right now.")
		return
	}
	for _, car := range cars {
		fmt.Fprintln(m.out, car)
	}
}

func (m *Menu) listCustomers() {
	for _, customer := range m.sys.Customers() {
		fmt.Fprintln(m.out, customer)
	}
}

func (m *Menu) rentCar() {
	customerID, ok := m.readInt64("Customer id: ")
	if !ok {
		return
	}
	carID, ok := m.readInt64("Car id: ")
	if !ok {
		return
	}

	receipt, err := m.sys.RentCar(customerID, carID)
	if err != nil {
		m.printOutcome(err)
		return
	}
	fmt.Fprintln(m.out, receipt.Message)
}

func (m *Menu) returnCar() {
	customerID, ok := m.readInt64("Customer id: ")
	if !ok {
		return
	}
	carID, ok := m.readInt64("Car id: ")
	if !ok {
		return
	}

	receipt, err := m.sys.ReturnCar(customerID, carID)
	if err != nil {
		m.printOutcome(err)
		return
	}
	fmt.Fprintln(m.out, receipt.Message)
}

// printOutcome renders the rental package's business outcomes as plain
// messages; they are expected results of normal use, not faults.
func (m *Menu) printOutcome(err error) {
	switch {
	case errors.Is(err, rental.ErrCustomerNotFound):
		fmt.Fprintln(m.out, "No customer with that id.")
	case errors.Is(err, rental.ErrCarNotFound):
		fmt.Fprintln(m.out, "No car with that id.")
	case errors.Is(err, rental.ErrCarUnavailable):
		fmt.Fprintln(m.out, "That car is already rented out.")
	case errors.Is(err, rental.ErrNotRentedByCustomer):
		fmt.Fprintln(m.out, "That customer has no active rental for that car.")
	default:
		fmt.Fprintln(m.out, "Error:", err)
	}
}

// readInt prompts until the user types a valid integer. Returns ok=false
// when input is exhausted.
func (m *Menu) readInt(prompt string) (int, bool) {
	n, ok := m.readInt64(prompt)
	return int(n), ok
}

func (m *Menu) readInt64(prompt string) (int64, bool) {
	for {
		fmt.Fprint(m.out, prompt)
		if !m.in.Scan() {
			return 0, false
		}
		text := strings.TrimSpace(m.in.Text())
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			fmt.Fprintf(m.out, "%q is not a number, try again.\n", text)
			continue
		}
		return n, true
	}
}
