package rental

import "time"

type RentalReceipt struct {
	CustomerID int64     `json:"customer_id"`
	CarID      int64     `json:"car_id"`
	StartDate  time.Time `json:"start_date"`
	Message    string    `json:"message"`
}

type ReturnReceipt struct {
	CustomerID int64   `json:"customer_id"`
	CarID      int64   `json:"car_id"`
	DaysRented int     `json:"days_rented"`
	Cost       float64 `json:"cost"`
	Message    string  `json:"message"`
}
