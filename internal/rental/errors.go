package rental

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCarNotFound         = errors.New("car not found")
	ErrCarUnavailable      = errors.New("car is not available")
	ErrNotRentedByCustomer = errors.New("car is not rented by this customer")
)
