package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP listen address, e.g. ":8083"
	Address string `env:"ADDRESS" envDefault:":8083"`

	// Redis broker used by the batch worker
	BrokerAddress string `env:"ASYNC_BROKER_ADDRESS" envDefault:"localhost:6379"`

	SentryDSN   string `env:"SENTRY_DSN"`
	Environment string `env:"ENV" envDefault:"local"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
