// Package config loads runtime configuration from the environment and command-line flags.
// Flags take precedence over environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v10"

	pkgcrypto "github.com/and161185/notekeeper/internal/crypto"
)

// Config holds the settings of the notes binary.
type Config struct {
	// PostgreSQL DSN
	DSN string `env:"NOTES_DSN"`

	// Logging
	LogLevel string `env:"NOTES_LOG_LEVEL" envDefault:"info"`
	Dev      bool   `env:"NOTES_DEV" envDefault:"false"`

	// bcrypt work factor for new password hashes
	BcryptCost int `env:"NOTES_BCRYPT_COST" envDefault:"10"`

	// Apply embedded migrations on startup
	Migrate bool `env:"NOTES_MIGRATE" envDefault:"true"`
}

// Load parses environment variables, then applies flag overrides from args
// (without the program name) and validates the result.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "human-readable development logging")
	fs.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt work factor")
	fs.BoolVar(&cfg.Migrate, "migrate", cfg.Migrate, "apply migrations on startup")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings and bounds.
func (c *Config) Validate() error {
	if c.DSN == "" {
		return errors.New("missing database DSN (NOTES_DSN or -dsn)")
	}
	if c.BcryptCost < pkgcrypto.MinCost || c.BcryptCost > pkgcrypto.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, pkgcrypto.MinCost, pkgcrypto.MaxCost)
	}
	return nil
}
