// Package config loads process configuration from the environment. Flags
// parsed by the individual commands override anything read here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the shared environment surface of every trash-tide command.
type Env struct {
	// ContentDir points at an external content pack; empty means the
	// embedded default pack.
	ContentDir string `env:"TRASH_TIDE_CONTENT_DIR"`
	// Seed fixes the run seed; zero picks one from the clock.
	Seed int64 `env:"TRASH_TIDE_SEED"`
	// LogLevel is consumed by the headless tools (debug, info, warn, error).
	LogLevel string `env:"TRASH_TIDE_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
