package domain

import "fmt"

// Car is a single rental unit in the fleet.
type Car struct {
	CarID     int64   `json:"car_id" gorm:"primaryKey"`
	Make      string  `json:"make" validate:"required"`
	Model     string  `json:"model" validate:"required"`
	Year      int     `json:"year" validate:"required,gt=1900"`
	DailyRate float64 `json:"daily_rate" validate:"gte=0"`
	Available bool    `json:"available"`
}

func NewCar(id int64, make, model string, year int, dailyRate float64) *Car {
	return &Car{
		CarID:     id,
		Make:      make,
		Model:     model,
		Year:      year,
		DailyRate: dailyRate,
		Available: true,
	}
}

// Rent marks the car as rented out. It reports false, with no state
// change, when the car is already rented.
func (c *Car) Rent() bool {
	if !c.Available {
		return false
	}
	c.Available = false
	return true
}

// Return marks the car as available again. Idempotent.
func (c *Car) Return() {
	c.Available = true
}

func (c *Car) StatusLabel() string {
	if c.Available {
		return "Available"
	}
	return "Rented Out"
}

func (c *Car) String() string {
	return fmt.Sprintf("Car %d: %d %s %s, $%.2f/day (%s)",
		c.CarID, c.Year, c.Make, c.Model, c.DailyRate, c.StatusLabel())
}
