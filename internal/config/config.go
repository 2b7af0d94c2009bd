package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultCatalogPath = "rental.db"
	defaultAppEnv      = "dev"
)

type Config struct {
	CatalogPath string
	AppEnv      string
}

// Load reads .env when present, then the environment. Everything has a
// default, so a bare `rental` invocation works out of the box.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		CatalogPath: getEnv("CATALOG_PATH", defaultCatalogPath),
		AppEnv:      strings.ToLower(getEnv("APP_ENV", defaultAppEnv)),
	}
}

func (c Config) DevMode() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
