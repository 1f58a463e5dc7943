package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// StatusKind is the coarse state of a game.
type StatusKind int

const (
	InProgress StatusKind = iota
	WhiteWins
	BlackWins
	Draw
)

// DrawReason says why a drawn game ended.
type DrawReason int

const (
	NoReason DrawReason = iota
	Stalemate
	ThreefoldRepetition
	FiftyMoveRule
)

func (r DrawReason) String() string {
	switch r {
	case Stalemate:
		return "stalemate"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FiftyMoveRule:
		return "fifty-move rule"
	}
	return ""
}

// Status is the game verdict. Once it leaves InProgress it stays put until
// the game is reset.
type Status struct {
	Kind   StatusKind
	Reason DrawReason
}

// Ended reports whether the game is over.
func (s Status) Ended() bool {
	return s.Kind != InProgress
}

// Winner returns the winning colour, if any.
func (s Status) Winner() (chess.Colour, bool) {
	switch s.Kind {
	case WhiteWins:
		return chess.White, true
	case BlackWins:
		return chess.Black, true
	}
	return chess.White, false
}

func winFor(colour chess.Colour) Status {
	if colour == chess.White {
		return Status{Kind: WhiteWins}
	}
	return Status{Kind: BlackWins}
}

func drawBy(reason DrawReason) Status {
	return Status{Kind: Draw, Reason: reason}
}

var statusNames = map[Status]string{
	{Kind: InProgress}:                        "in progress",
	{Kind: WhiteWins}:                         "white wins",
	{Kind: BlackWins}:                         "black wins",
	{Kind: Draw, Reason: Stalemate}:           "draw by stalemate",
	{Kind: Draw, Reason: ThreefoldRepetition}: "draw by threefold repetition",
	{Kind: Draw, Reason: FiftyMoveRule}:       "draw by fifty-move rule",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d,%d)", s.Kind, s.Reason)
}

// MarshalText encodes the status as its String form.
func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("unknown status %v", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status written by MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}
