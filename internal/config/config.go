// Package config provides configuration for the chessrules driver.
package config

import (
	"io"
	"log"
	"os"
)

// Verbosity levels.
const (
	Quiet   = 0 // outcomes only
	Normal  = 1 // outcomes and prompts
	Verbose = 2 // plus a running log of game events
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Game holds the start position settings.
	Game *GameConfig

	// Store holds the saved-game database settings.
	Store *StoreConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Game:       NewGameConfig(),
		Store:      NewStoreConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Store.Validate()
}

// Logger returns the logger for game events: LogFile when Verbosity is at
// least Verbose, otherwise a logger that discards everything.
func (c *Config) Logger() *log.Logger {
	if c.Verbosity < Verbose || c.LogFile == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.LogFile, "chessrules: ", log.Ltime)
}
