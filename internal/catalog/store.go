package catalog

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"carrental/internal/database"
	"carrental/internal/domain"
)

// Store is the fleet catalog: the cars and customers a session starts
// from. It holds setup data only; live rental state stays in memory and
// is never written back.
type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	db, err := database.Connect(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog")
	}
	return &Store{db: db}, nil
}

func (s *Store) Migrate() error {
	err := s.db.AutoMigrate(&domain.Car{}, &domain.Customer{})
	return errors.Wrap(err, "migrate catalog")
}

// Reset clears both tables so the seed tool can start from scratch.
func (s *Store) Reset() error {
	if err := s.db.Exec("DELETE FROM customers").Error; err != nil {
		return errors.Wrap(err, "reset customers")
	}
	if err := s.db.Exec("DELETE FROM cars").Error; err != nil {
		return errors.Wrap(err, "reset cars")
	}
	return nil
}

func (s *Store) SaveCar(car *domain.Car) error {
	return errors.Wrapf(s.db.Save(car).Error, "save car %d", car.CarID)
}

func (s *Store) SaveCustomer(customer *domain.Customer) error {
	return errors.Wrapf(s.db.Save(customer).Error, "save customer %d", customer.CustomerID)
}

// Cars returns the full catalog fleet ordered by id.
func (s *Store) Cars() ([]domain.Car, error) {
	var cars []domain.Car
	if err := s.db.Order("car_id").Find(&cars).Error; err != nil {
		return nil, errors.Wrap(err, "load cars")
	}
	return cars, nil
}

// Customers returns the catalog roster ordered by id.
func (s *Store) Customers() ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := s.db.Order("customer_id").Find(&customers).Error; err != nil {
		return nil, errors.Wrap(err, "load customers")
	}
	return customers, nil
}
