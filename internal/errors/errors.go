// Package errors provides sentinel errors and error types for the rules engine.
// It defines the rejection reasons callers can inspect with errors.Is() and
// a structured error type that preserves move context for errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move attempt that the rules reject: no piece
	// on the source square, a piece of the inactive player, or an illegal
	// destination.
	ErrInvalidMove = errors.New("invalid move")

	// ErrGameEnded indicates a move attempt after the game reached a terminal status.
	ErrGameEnded = errors.New("game already ended")

	// ErrPromotionPending indicates a move attempt while a pawn awaits its
	// promotion choice.
	ErrPromotionPending = errors.New("promotion choice pending")

	// ErrInvalidPromotion indicates a promotion kind outside queen, rook,
	// bishop and knight, or a promotion on the wrong square.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrNoPendingPromotion indicates a promotion choice with no pawn waiting.
	ErrNoPendingPromotion = errors.New("no promotion pending")

	// ErrInvalidSquare indicates a malformed or off-board square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSnapshot indicates a saved game that cannot be restored.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrSnapshotNotFound indicates a saved game name with no stored snapshot.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the context of the move attempt.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err    error  // The underlying sentinel
	Ply    int    // 1-based ply the attempt would have been (0 if unknown)
	From   string // Source square name (if applicable)
	To     string // Destination square name (if applicable)
	Reason string // Human readable detail
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.To != "":
		parts = append(parts, fmt.Sprintf("square %s", e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
