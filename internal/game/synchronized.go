package game

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Synchronized wraps a Game with mutex protection so that calls from several
// goroutines are applied one at a time.
type Synchronized struct {
	game *Game
	mu   sync.RWMutex
}

// NewSynchronized wraps g. The caller must not use g directly afterwards.
func NewSynchronized(g *Game) *Synchronized {
	return &Synchronized{game: g}
}

// AttemptMove calls Game.AttemptMove under the lock.
func (s *Synchronized) AttemptMove(from, to chess.Square) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.AttemptMove(from, to)
}

// ChoosePromotion calls Game.ChoosePromotion under the lock.
func (s *Synchronized) ChoosePromotion(square chess.Square, kind chess.Kind) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ChoosePromotion(square, kind)
}

// Reset calls Game.Reset under the lock.
func (s *Synchronized) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
}

// Restore calls Game.Restore under the lock.
func (s *Synchronized) Restore(snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Restore(snap)
}

// LegalDestinations calls Game.LegalDestinations under the read lock.
func (s *Synchronized) LegalDestinations(from chess.Square) []chess.Square {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.LegalDestinations(from)
}

// Status returns the current verdict.
func (s *Synchronized) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Status()
}

// SideToMove returns the colour whose move it is.
func (s *Synchronized) SideToMove() chess.Colour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.SideToMove()
}

// Position returns a copy of the full position.
func (s *Synchronized) Position() *chess.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Position()
}

// Capturable calls Game.Capturable under the read lock.
func (s *Synchronized) Capturable() []chess.Square {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Capturable()
}

// PendingPromotion returns the square of a pawn awaiting its promotion
// choice.
func (s *Synchronized) PendingPromotion() (chess.Square, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.PendingPromotion()
}

// RepetitionCount returns how often the current position has occurred.
func (s *Synchronized) RepetitionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.RepetitionCount()
}

// Snapshot captures the current state.
func (s *Synchronized) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Snapshot()
}

// FEN returns the current position as FEN.
func (s *Synchronized) FEN() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.FEN()
}
