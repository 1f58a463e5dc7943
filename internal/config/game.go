package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameConfig holds settings for new games.
type GameConfig struct {
	// StartFEN is the position every new game starts from.
	StartFEN string
}

// NewGameConfig creates a GameConfig with the standard start position.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StartFEN: engine.InitialFEN,
	}
}

// Validate checks that StartFEN parses.
func (c *GameConfig) Validate() error {
	if _, err := engine.NewPositionFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
