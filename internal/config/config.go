// Package config loads panel configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultAdminPassword is the fallback shared secret; main warns loudly
// when it is in use.
const DefaultAdminPassword = "admin123"

type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	StoragePath   string        `env:"STORAGE_PATH" envDefault:"satr-panel.db"`
	AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
	ProbeURL      string        `env:"PROBE_URL"`
	ProbeInterval time.Duration `env:"PROBE_INTERVAL" envDefault:"30s"`
}

// Parse loads configuration from the environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
