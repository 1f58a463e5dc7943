package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square identifies one of the 64 board positions as row*8+col.
// Row 0 is Black's home rank, row 7 is White's.
type Square int

// NoSquare marks an absent square (e.g. no last move yet).
const NoSquare Square = -1

// NewSquare returns the square at (row, col). The result is only meaningful
// when both coordinates are in 0..7; check with Valid.
func NewSquare(row, col int) Square {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + col)
}

// Row returns the row (0-7) of the square.
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Col returns the column (0-7) of the square.
func (s Square) Col() int {
	return int(s) % BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square dr rows and dc columns away, or NoSquare if that
// falls off the board.
func (s Square) Offset(dr, dc int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.Row()+dr, s.Col()+dc)
}

// String returns the coordinate name of the square ("e2"), or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col()), byte('8' - s.Row())})
}

// ParseSquare parses a coordinate name such as "e2".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return NewSquare(int('8'-rank), int(file-'a')), nil
}

// MustParseSquare is like ParseSquare but panics on error.
// Intended for constants and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
