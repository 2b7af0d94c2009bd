package rental

import (
	"fmt"
	"time"

	"carrental/internal/domain"
	"carrental/internal/pkg/validator"
)

// System owns the fleet and the customer roster for one session and
// orchestrates rent/return transitions. It keeps insertion order so
// listings are stable. Single-session tool, so no locking.
type System struct {
	cars          map[int64]*domain.Car
	carOrder      []int64
	customers     map[int64]*domain.Customer
	customerOrder []int64
	clock         Clock
}

func NewSystem(clock Clock) *System {
	if clock == nil {
		clock = SystemClock()
	}
	return &System{
		cars:      make(map[int64]*domain.Car),
		customers: make(map[int64]*domain.Customer),
		clock:     clock,
	}
}

// AddCar registers a car in the fleet. Adding an existing id replaces
// the previous entry and keeps its position in the listing order.
func (s *System) AddCar(car *domain.Car) error {
	if fields := validator.Fields(car); fields != nil {
		return fmt.Errorf("%w: %v", ErrValidation, fields)
	}
	if _, exists := s.cars[car.CarID]; !exists {
		s.carOrder = append(s.carOrder, car.CarID)
	}
	s.cars[car.CarID] = car
	return nil
}

// AddCustomer registers a customer. Same replace semantics as AddCar.
func (s *System) AddCustomer(customer *domain.Customer) error {
	if fields := validator.Fields(customer); fields != nil {
		return fmt.Errorf("%w: %v", ErrValidation, fields)
	}
	if customer.RentedCars == nil {
		customer.RentedCars = make(map[int64]time.Time)
	}
	if _, exists := s.customers[customer.CustomerID]; !exists {
		s.customerOrder = append(s.customerOrder, customer.CustomerID)
	}
	s.customers[customer.CustomerID] = customer
	return nil
}

func (s *System) Car(id int64) (*domain.Car, bool) {
	car, ok := s.cars[id]
	return car, ok
}

func (s *System) Customer(id int64) (*domain.Customer, bool) {
	customer, ok := s.customers[id]
	return customer, ok
}

// AllCars lists the whole fleet in insertion order.
func (s *System) AllCars() []*domain.Car {
	out := make([]*domain.Car, 0, len(s.carOrder))
	for _, id := range s.carOrder {
		out = append(out, s.cars[id])
	}
	return out
}

// AvailableCars lists cars currently available for rent, in insertion
// order. Empty slice when the whole fleet is out.
func (s *System) AvailableCars() []*domain.Car {
	out := make([]*domain.Car, 0, len(s.carOrder))
	for _, id := range s.carOrder {
		if car := s.cars[id]; car.Available {
			out = append(out, car)
		}
	}
	return out
}

// Customers lists the roster in insertion order.
func (s *System) Customers() []*domain.Customer {
	out := make([]*domain.Customer, 0, len(s.customerOrder))
	for _, id := range s.customerOrder {
		out = append(out, s.customers[id])
	}
	return out
}

// RentCar rents carID to customerID starting today. Unknown ids and an
// already-rented car come back as the package's sentinel errors; none
// of those leave any state change behind.
func (s *System) RentCar(customerID, carID int64) (*RentalReceipt, error) {
	customer, ok := s.customers[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	car, ok := s.cars[carID]
	if !ok {
		return nil, ErrCarNotFound
	}
	if !car.Rent() {
		return nil, ErrCarUnavailable
	}

	start := s.clock.Now()
	customer.RentCar(car.CarID, start)

	return &RentalReceipt{
		CustomerID: customer.CustomerID,
		CarID:      car.CarID,
		StartDate:  start,
		Message: fmt.Sprintf("%s %s rented to %s on %s",
			car.Make, car.Model, customer.Name, start.Format("2006-01-02")),
	}, nil
}

// ReturnCar closes the rental of carID by customerID and prices it.
// At least one full day is always charged, including same-day returns.
// The cost is computed before any state changes.
func (s *System) ReturnCar(customerID, carID int64) (*ReturnReceipt, error) {
	customer, ok := s.customers[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	car, ok := s.cars[carID]
	if !ok {
		return nil, ErrCarNotFound
	}
	start, ok := customer.RentalStart(car.CarID)
	if !ok {
		return nil, ErrNotRentedByCustomer
	}

	days := daysBetween(start, s.clock.Now())
	if days < 1 {
		days = 1
	}
	cost := float64(days) * car.DailyRate

	car.Return()
	customer.ReturnCar(car.CarID)

	return &ReturnReceipt{
		CustomerID: customer.CustomerID,
		CarID:      car.CarID,
		DaysRented: days,
		Cost:       cost,
		Message: fmt.Sprintf("%s %s returned by %s after %d day(s), total $%.2f",
			car.Make, car.Model, customer.Name, days, cost),
	}, nil
}

// daysBetween counts whole calendar days from start to end, ignoring
// the time of day on either side.
func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
