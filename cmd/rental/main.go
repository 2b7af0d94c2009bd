package main

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"carrental/internal/catalog"
	"carrental/internal/cli"
	"carrental/internal/config"
	"carrental/internal/domain"
	"carrental/internal/rental"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	if cfg.DevMode() {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	sys := rental.NewSystem(rental.SystemClock())

	if err := loadCatalog(sys, cfg.CatalogPath); err != nil {
		logger.Warn("catalog unavailable, using built-in demo fleet",
			zap.String("catalog", cfg.CatalogPath), zap.Error(err))
		seedDemoFleet(sys)
	}

	menu := cli.New(sys, os.Stdin, os.Stdout)
	menu.Run()
}

// loadCatalog fills the in-memory system from the seeded catalog. An
// empty fleet counts as a failure so the fallback kicks in on a fresh
// checkout with no catalog file.
func loadCatalog(sys *rental.System, path string) error {
	store, err := catalog.Open(path)
	if err != nil {
		return err
	}
	if err := store.Migrate(); err != nil {
		return err
	}

	cars, err := store.Cars()
	if err != nil {
		return err
	}
	if len(cars) == 0 {
		return errors.New("catalog is empty, run the seed tool first")
	}
	for i := range cars {
		if err := sys.AddCar(&cars[i]); err != nil {
			return err
		}
	}

	customers, err := store.Customers()
	if err != nil {
		return err
	}
	for i := range customers {
		if err := sys.AddCustomer(&customers[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedDemoFleet(sys *rental.System) {
	_ = sys.AddCar(domain.NewCar(1, "Toyota", "Corolla", 2020, 55.00))
	_ = sys.AddCar(domain.NewCar(2, "Honda", "Civic", 2022, 62.50))
	_ = sys.AddCar(domain.NewCar(3, "Ford", "Focus", 2019, 48.00))
	_ = sys.AddCustomer(domain.NewCustomer(101, "Alice Nguyen"))
	_ = sys.AddCustomer(domain.NewCustomer(102, "Bekzat Omarov"))
}
