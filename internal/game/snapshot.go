package game

import (
	"encoding/json"
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/history"
)

// Snapshot is a serialisable copy of a game's state.
type Snapshot struct {
	FEN      string        `json:"fen"`
	LastMove string        `json:"lastMove,omitempty"`
	History  []history.Key `json:"history"`
	Status   Status        `json:"status"`
	Pending  string        `json:"pending,omitempty"`
	Ply      int           `json:"ply"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		FEN:     g.FEN(),
		History: g.history.Keys(),
		Status:  g.status,
		Ply:     g.ply,
	}
	if !g.pos.LastMove.IsNone() {
		s.LastMove = g.pos.LastMove.String()
	}
	if g.pending != chess.NoSquare {
		s.Pending = g.pending.String()
	}
	return s
}

// Restore replaces the game state with s. On error the game is unchanged.
func (g *Game) Restore(s Snapshot) error {
	pos, err := engine.NewPositionFromFEN(s.FEN)
	if err != nil {
		return invalidSnapshot("%v", err)
	}

	pos.LastMove = chess.NoMove
	if s.LastMove != "" {
		move, err := ParseMove(s.LastMove)
		if err != nil {
			return invalidSnapshot("last move %q: %v", s.LastMove, err)
		}
		if pos.Board.Get(move.To).IsEmpty() {
			return invalidSnapshot("last move %s ends on an empty square", move)
		}
		pos.LastMove = move
	}

	for i, key := range s.History {
		if !key.Valid() {
			return invalidSnapshot("history entry %d is malformed", i)
		}
	}

	if s.Ply < 0 {
		return invalidSnapshot("negative ply %d", s.Ply)
	}

	pending := chess.NoSquare
	var pendingResult chess.MoveResult
	if s.Pending != "" {
		if s.Status.Ended() {
			return invalidSnapshot("promotion pending in a finished game")
		}
		sq, err := chess.ParseSquare(s.Pending)
		if err != nil {
			return invalidSnapshot("pending square: %v", err)
		}
		pawn := pos.Board.Get(sq)
		if !pawn.Is(pos.ToMove, chess.Pawn) || sq.Row() != chess.PromotionRow(pos.ToMove) {
			return invalidSnapshot("no %s pawn to promote on %s", pos.ToMove, sq)
		}
		pending = sq
		pendingResult = chess.MoveResult{
			From:             pos.LastMove.From,
			To:               sq,
			Piece:            pawn,
			CapturedOn:       chess.NoSquare,
			RookFrom:         chess.NoSquare,
			RookTo:           chess.NoSquare,
			PromotionPending: true,
		}
	}

	g.pos = pos
	g.history = history.FromKeys(s.History)
	g.status = s.Status
	g.pending = pending
	g.pendingResult = pendingResult
	g.ply = s.Ply
	g.logger.Printf("restored at ply %d: %s", g.ply, s.FEN)
	return nil
}

// Encode returns the JSON form of s.
func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot parses a snapshot written by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, invalidSnapshot("%v", err)
	}
	return s, nil
}

func invalidSnapshot(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidSnapshot)
}

// ParseMove reads a move written as two square names, e.g. "e2e4".
func ParseMove(text string) (chess.Move, error) {
	if len(text) != 4 {
		return chess.NoMove, errors.ErrInvalidSquare
	}
	from, err := chess.ParseSquare(text[:2])
	if err != nil {
		return chess.NoMove, err
	}
	to, err := chess.ParseSquare(text[2:])
	if err != nil {
		return chess.NoMove, err
	}
	return chess.Move{From: from, To: to}, nil
}
