package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/domain"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advanceDays(n int) { f.now = f.now.AddDate(0, 0, n) }

func newTestSystem(t *testing.T) (*System, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)}
	sys := NewSystem(clock)

	require.NoError(t, sys.AddCar(domain.NewCar(1, "Toyota", "Corolla", 2020, 55.00)))
	require.NoError(t, sys.AddCar(domain.NewCar(2, "Honda", "Civic", 2022, 62.50)))
	require.NoError(t, sys.AddCustomer(domain.NewCustomer(101, "Alice Nguyen")))
	require.NoError(t, sys.AddCustomer(domain.NewCustomer(102, "Bekzat Omarov")))
	return sys, clock
}

// assertInvariant checks that a car is available exactly when no
// customer holds it.
func assertInvariant(t *testing.T, sys *System) {
	t.Helper()
	held := make(map[int64]int64)
	for _, customer := range sys.Customers() {
		for carID := range customer.RentedCars {
			_, dup := held[carID]
			assert.False(t, dup, "car %d held by more than one customer", carID)
			held[carID] = customer.CustomerID
		}
	}
	for _, car := range sys.AllCars() {
		_, isHeld := held[car.CarID]
		assert.Equal(t, !isHeld, car.Available, "car %d availability", car.CarID)
	}
}

func TestRentCar(t *testing.T) {
	sys, _ := newTestSystem(t)

	receipt, err := sys.RentCar(101, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(101), receipt.CustomerID)
	assert.Equal(t, int64(1), receipt.CarID)
	assert.Contains(t, receipt.Message, "Toyota Corolla")
	assert.Contains(t, receipt.Message, "Alice Nguyen")

	car, _ := sys.Car(1)
	assert.False(t, car.Available)
	assertInvariant(t, sys)
}

func TestRentCarUnavailable(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := sys.RentCar(101, 1)
	require.NoError(t, err)

	// second attempt, by anyone, reports the outcome with no state change
	_, err = sys.RentCar(102, 1)
	assert.ErrorIs(t, err, ErrCarUnavailable)

	customer, _ := sys.Customer(102)
	assert.Empty(t, customer.RentedCars)
	assertInvariant(t, sys)
}

func TestRentCarUnknownIDs(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := sys.RentCar(999, 1)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = sys.RentCar(101, 999)
	assert.ErrorIs(t, err, ErrCarNotFound)

	car, _ := sys.Car(1)
	assert.True(t, car.Available)
	assertInvariant(t, sys)
}

func TestReturnCarSameDayChargesOneDay(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := sys.RentCar(101, 1)
	require.NoError(t, err)

	receipt, err := sys.ReturnCar(101, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.DaysRented)
	assert.Equal(t, 55.00, receipt.Cost)
	assertInvariant(t, sys)
}

func TestReturnCarAfterTwoDays(t *testing.T) {
	sys, clock := newTestSystem(t)

	_, err := sys.RentCar(101, 1)
	require.NoError(t, err)

	clock.advanceDays(2)

	receipt, err := sys.ReturnCar(101, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, receipt.DaysRented)
	assert.Equal(t, 110.00, receipt.Cost)

	car, _ := sys.Car(1)
	assert.True(t, car.Available)
	customer, _ := sys.Customer(101)
	assert.Empty(t, customer.RentedCars)
	assertInvariant(t, sys)
}

func TestReturnCarAfterThreeDays(t *testing.T) {
	sys, clock := newTestSystem(t)

	_, err := sys.RentCar(102, 2)
	require.NoError(t, err)

	clock.advanceDays(3)

	receipt, err := sys.ReturnCar(102, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, receipt.DaysRented)
	assert.Equal(t, 187.50, receipt.Cost)
	assertInvariant(t, sys)
}

func TestReturnCarNotRented(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := sys.ReturnCar(101, 2)
	assert.ErrorIs(t, err, ErrNotRentedByCustomer)

	// renting to one customer does not let another return it
	_, err = sys.RentCar(101, 1)
	require.NoError(t, err)
	_, err = sys.ReturnCar(102, 1)
	assert.ErrorIs(t, err, ErrNotRentedByCustomer)

	car, _ := sys.Car(1)
	assert.False(t, car.Available)
	assertInvariant(t, sys)
}

func TestReturnCarUnknownIDs(t *testing.T) {
	sys, _ := newTestSystem(t)

	_, err := sys.ReturnCar(999, 1)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = sys.ReturnCar(101, 999)
	assert.ErrorIs(t, err, ErrCarNotFound)
	assertInvariant(t, sys)
}

func TestRentReturnRoundTrip(t *testing.T) {
	sys, clock := newTestSystem(t)

	for _, carID := range []int64{1, 2} {
		_, err := sys.RentCar(101, carID)
		require.NoError(t, err)
		assertInvariant(t, sys)

		clock.advanceDays(1)

		_, err = sys.ReturnCar(101, carID)
		require.NoError(t, err)

		car, _ := sys.Car(carID)
		assert.True(t, car.Available)
		customer, _ := sys.Customer(101)
		_, held := customer.RentalStart(carID)
		assert.False(t, held)
		assertInvariant(t, sys)
	}
}

func TestListingsKeepInsertionOrder(t *testing.T) {
	sys, _ := newTestSystem(t)

	all := sys.AllCars()
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].CarID)
	assert.Equal(t, int64(2), all[1].CarID)

	_, err := sys.RentCar(101, 1)
	require.NoError(t, err)

	available := sys.AvailableCars()
	require.Len(t, available, 1)
	assert.Equal(t, int64(2), available[0].CarID)

	_, err = sys.RentCar(102, 2)
	require.NoError(t, err)
	assert.Empty(t, sys.AvailableCars())
}

func TestAddCarReplacesExistingID(t *testing.T) {
	sys, _ := newTestSystem(t)

	require.NoError(t, sys.AddCar(domain.NewCar(1, "Toyota", "Camry", 2024, 70.00)))

	all := sys.AllCars()
	require.Len(t, all, 2)
	// replacement keeps the original listing position
	assert.Equal(t, "Camry", all[0].Model)
}

func TestAddValidation(t *testing.T) {
	sys, _ := newTestSystem(t)

	err := sys.AddCar(&domain.Car{CarID: 3, Make: "", Model: "Ghost", Year: 2020})
	assert.ErrorIs(t, err, ErrValidation)

	err = sys.AddCar(domain.NewCar(3, "Fiat", "Panda", 2018, -5))
	assert.ErrorIs(t, err, ErrValidation)

	err = sys.AddCustomer(&domain.Customer{CustomerID: 103})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Len(t, sys.AllCars(), 2)
	assert.Len(t, sys.Customers(), 2)
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 8, 20, 23, 50, 0, 0, time.UTC)

	assert.Equal(t, 0, daysBetween(base, base))
	// time of day is ignored, only the calendar date counts
	assert.Equal(t, 1, daysBetween(base, base.Add(15*time.Minute)))
	assert.Equal(t, 3, daysBetween(base, base.AddDate(0, 0, 3)))
}
