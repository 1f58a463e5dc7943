// Package history records the positions reached in a game for repetition
// detection.
package history

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Key is the canonical encoding of a position for repetition purposes: the 64
// square letters in index order followed by 'w' or 'b' for the side to move.
// Castling rights and en passant availability are not part of the key.
type Key string

// KeyOf encodes board and side to move as a Key.
func KeyOf(board *chess.Board, toMove chess.Colour) Key {
	buf := make([]byte, 0, chess.NumSquares+1)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		buf = append(buf, board.Get(sq).Letter())
	}
	if toMove == chess.White {
		buf = append(buf, 'w')
	} else {
		buf = append(buf, 'b')
	}
	return Key(buf)
}

// Valid reports whether k has the shape produced by KeyOf.
func (k Key) Valid() bool {
	if len(k) != chess.NumSquares+1 {
		return false
	}
	for i := 0; i < chess.NumSquares; i++ {
		c := k[i]
		if c != '.' && chess.KindFromLetter(c) == chess.Empty {
			return false
		}
	}
	side := k[chess.NumSquares]
	return side == 'w' || side == 'b'
}

// History is an append-only record of position keys with occurrence counts.
type History struct {
	// keys holds every appended key in order
	keys []Key
	// counts maps each key to its number of occurrences
	counts map[Key]int
}

// New creates an empty history.
func New() *History {
	return &History{counts: make(map[Key]int)}
}

// FromKeys creates a history holding keys in order.
func FromKeys(keys []Key) *History {
	h := New()
	for _, k := range keys {
		h.Append(k)
	}
	return h
}

// Append records key and returns how many times it has now occurred.
func (h *History) Append(key Key) int {
	h.keys = append(h.keys, key)
	h.counts[key]++
	return h.counts[key]
}

// Count returns the number of occurrences of key.
func (h *History) Count(key Key) int {
	return h.counts[key]
}

// Keys returns a copy of the recorded keys in order.
func (h *History) Keys() []Key {
	return slices.Clone(h.keys)
}

// Reset clears the history.
func (h *History) Reset() {
	h.keys = nil
	h.counts = make(map[Key]int)
}
