package main

import (
	"os"

	"go.uber.org/zap"

	"carrental/internal/catalog"
	"carrental/internal/config"
	"carrental/internal/domain"
)

// Seeds the fleet catalog with a demo fleet and roster. Safe to re-run:
// the catalog is wiped and rebuilt each time.
func main() {
	cfg := config.Load()

	var logger *zap.Logger
	if cfg.DevMode() {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	store, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		logger.Error("open catalog failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("running migrations", zap.String("catalog", cfg.CatalogPath))
	if err := store.Migrate(); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("cleaning old data")
	if err := store.Reset(); err != nil {
		logger.Error("reset failed", zap.Error(err))
		os.Exit(1)
	}

	cars := []*domain.Car{
		domain.NewCar(1, "Toyota", "Corolla", 2020, 55.00),
		domain.NewCar(2, "Honda", "Civic", 2022, 62.50),
		domain.NewCar(3, "Ford", "Focus", 2019, 48.00),
		domain.NewCar(4, "Tesla", "Model 3", 2023, 110.00),
		domain.NewCar(5, "Volkswagen", "Golf", 2021, 51.75),
	}
	for _, car := range cars {
		if err := store.SaveCar(car); err != nil {
			logger.Error("seed car failed", zap.Int64("car_id", car.CarID), zap.Error(err))
			os.Exit(1)
		}
	}
	logger.Info("fleet seeded", zap.Int("cars", len(cars)))

	customers := []*domain.Customer{
		domain.NewCustomer(101, "Alice Nguyen"),
		domain.NewCustomer(102, "Bekzat Omarov"),
		domain.NewCustomer(103, "Dina Carver"),
	}
	for _, customer := range customers {
		if err := store.SaveCustomer(customer); err != nil {
			logger.Error("seed customer failed", zap.Int64("customer_id", customer.CustomerID), zap.Error(err))
			os.Exit(1)
		}
	}
	logger.Info("roster seeded", zap.Int("customers", len(customers)))
}
