package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustPosition parses fen and calls t.Fatal if it is invalid.
func MustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("invalid test FEN %q: %v", fen, err)
	}
	return pos
}

// MustSquare parses a square name such as "e2" and calls t.Fatal if it is
// invalid.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("invalid test square %q: %v", name, err)
	}
	return sq
}

// MustSquares parses each name with MustSquare.
func MustSquares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		squares = append(squares, MustSquare(t, name))
	}
	return squares
}
