package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// StoreConfig holds settings for the saved-game database.
type StoreConfig struct {
	// Enabled turns on save, load and list.
	Enabled bool

	// Dir is the database directory; empty means the platform default.
	Dir string

	// InMemory keeps the database in memory, discarding it on exit.
	InMemory bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Enabled: true,
	}
}

// Validate checks for contradictory settings.
func (c *StoreConfig) Validate() error {
	if c.InMemory && c.Dir != "" {
		return fmt.Errorf("in-memory store cannot use directory %q: %w", c.Dir, errors.ErrInvalidConfig)
	}
	return nil
}
