package domain

import (
	"fmt"
	"time"
)

// Customer is a renter. RentedCars maps a held car's id to the date the
// rental started; it is session state and never stored in the catalog.
type Customer struct {
	CustomerID int64               `json:"customer_id" gorm:"primaryKey"`
	Name       string              `json:"name" validate:"required"`
	RentedCars map[int64]time.Time `json:"-" gorm:"-"`
}

func NewCustomer(id int64, name string) *Customer {
	return &Customer{
		CustomerID: id,
		Name:       name,
		RentedCars: make(map[int64]time.Time),
	}
}

// RentCar records the start date for a car this customer now holds.
// Availability has already been checked by the caller.
func (c *Customer) RentCar(carID int64, start time.Time) {
	if c.RentedCars == nil {
		c.RentedCars = make(map[int64]time.Time)
	}
	c.RentedCars[carID] = start
}

// ReturnCar drops the rental record for carID. No-op when absent.
func (c *Customer) ReturnCar(carID int64) {
	delete(c.RentedCars, carID)
}

// RentalStart reports the start date of this customer's rental of carID,
// if one exists.
func (c *Customer) RentalStart(carID int64) (time.Time, bool) {
	start, ok := c.RentedCars[carID]
	return start, ok
}

func (c *Customer) String() string {
	return fmt.Sprintf("Customer %d: %s (%d cars rented)",
		c.CustomerID, c.Name, len(c.RentedCars))
}
