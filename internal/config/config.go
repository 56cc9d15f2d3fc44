package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"beatboost/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with their envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is only
	// attached to log records.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Storage configs.Storage  `envPrefix:"STORAGE_"`
	SQLite  configs.SQLite   `envPrefix:"SQLITE_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Payment configs.Payment  `envPrefix:"PAYMENT_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is set. An unknown
// storage driver is rejected here so main never starts half-configured.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Storage.Driver {
	case configs.StorageSQLite, configs.StoragePostgres, configs.StorageMemory:
	default:
		return cfg, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	return cfg, nil
}
