// Package config loads the service configuration from the environment.
// Scoring weights and thresholds are deliberately not configurable: they are
// contract values the dashboard widgets assert on.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port              int    `env:"PORT" envDefault:"8080"`
	PolicyRegistryURL string `env:"POLICY_REGISTRY_URL"`
	Debug             bool   `env:"DEBUG" envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
