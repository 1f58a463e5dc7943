// Package game runs a chess game on top of the rules engine: it checks that
// moves come from the side to move, applies them, handles promotion choices,
// records position history and decides when the game is over.
package game

import (
	"fmt"
	"io"
	"log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/history"
)

// Game holds the full state of one game. It is not safe for concurrent use;
// wrap it in a Synchronized for that.
type Game struct {
	pos     *chess.Position
	start   *chess.Position
	history *history.History
	status  Status

	// pending is the square of a pawn awaiting its promotion choice, or
	// NoSquare. pendingResult is the move that put it there.
	pending       chess.Square
	pendingResult chess.MoveResult

	// ply counts applied moves since the start position.
	ply int

	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game) error

// WithLogger sets the logger for game events. By default nothing is logged.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) error {
		if logger != nil {
			g.logger = logger
		}
		return nil
	}
}

// FromFEN starts the game, and every reset, from the given position instead of
// the standard one.
func FromFEN(fen string) Option {
	return func(g *Game) error {
		pos, err := engine.NewPositionFromFEN(fen)
		if err != nil {
			return err
		}
		g.start = pos
		return nil
	}
}

// New creates a game ready for White's first move, or for the side to move
// of the FromFEN position.
func New(opts ...Option) (*Game, error) {
	g := &Game{
		start:   chess.NewInitialPosition(),
		history: history.New(),
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.Reset()
	return g, nil
}

// Reset discards all state and returns to the start position with an empty
// history.
func (g *Game) Reset() {
	g.pos = g.start.Copy()
	g.history.Reset()
	g.status = Status{}
	g.pending = chess.NoSquare
	g.pendingResult = chess.MoveResult{}
	g.ply = 0
	g.logger.Printf("new game: %s", engine.PositionToFEN(g.pos))
}

// LegalDestinations returns the squares the piece on from may move to. It is
// empty when from holds no piece of the side to move, when the game has
// ended, or while a promotion is pending.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	if g.status.Ended() || g.pending != chess.NoSquare {
		return nil
	}
	piece := g.pos.Board.Get(from)
	if piece.IsEmpty() || piece.Colour != g.pos.ToMove {
		return nil
	}
	return engine.LegalDestinations(g.pos, from)
}

// Capturable returns the enemy squares the side to move can capture right
// now. A pawn exposed to en passant is included on the square it stands on.
func (g *Game) Capturable() []chess.Square {
	if g.status.Ended() || g.pending != chess.NoSquare {
		return nil
	}
	return engine.CapturableSquares(g.pos, g.pos.ToMove)
}

// AttemptMove tries to move the piece on from to to for the side to move.
// A rejected attempt leaves the game unchanged.
func (g *Game) AttemptMove(from, to chess.Square) Outcome {
	switch {
	case g.status.Ended():
		return g.reject(errors.ErrGameEnded)
	case g.pending != chess.NoSquare:
		return g.reject(&errors.MoveError{
			Err: errors.ErrPromotionPending,
			Ply: g.ply,
			To:  g.pending.String(),
		})
	}

	if reason := g.checkMove(from, to); reason != "" {
		return g.reject(&errors.MoveError{
			Err:    errors.ErrInvalidMove,
			Ply:    g.ply + 1,
			From:   from.String(),
			To:     to.String(),
			Reason: reason,
		})
	}

	result := engine.ApplyMove(g.pos, from, to)
	g.ply++
	g.logger.Printf("ply %d: %s %s", g.ply, g.pos.Board.Get(to), chess.Move{From: from, To: to})

	if result.PromotionPending {
		g.pending = to
		g.pendingResult = result
		return Outcome{Kind: AwaitingPromotion, Result: result, Status: g.status}
	}
	return g.complete(result)
}

// checkMove returns why from-to cannot be played now, or "".
func (g *Game) checkMove(from, to chess.Square) string {
	if !from.Valid() || !to.Valid() {
		return "square off the board"
	}
	piece := g.pos.Board.Get(from)
	if piece.IsEmpty() {
		return "no piece on " + from.String()
	}
	if piece.Colour != g.pos.ToMove {
		return fmt.Sprintf("%s to move", g.pos.ToMove)
	}
	return engine.Explain(g.pos, from, to)
}

// ChoosePromotion completes a pending promotion on square with the given
// kind, which must be a queen, rook, bishop or knight.
func (g *Game) ChoosePromotion(square chess.Square, kind chess.Kind) Outcome {
	if g.pending == chess.NoSquare {
		return g.reject(errors.ErrNoPendingPromotion)
	}
	if square != g.pending {
		return g.reject(&errors.MoveError{
			Err:    errors.ErrInvalidPromotion,
			Ply:    g.ply,
			To:     square.String(),
			Reason: "pending promotion is on " + g.pending.String(),
		})
	}
	if !kind.IsPromotionKind() || !engine.Promote(g.pos, square, kind) {
		return g.reject(&errors.MoveError{
			Err:    errors.ErrInvalidPromotion,
			Ply:    g.ply,
			To:     square.String(),
			Reason: "cannot promote to " + kind.String(),
		})
	}

	result := g.pendingResult
	result.PromotionPending = false
	result.Promotion = kind
	g.pending = chess.NoSquare
	g.pendingResult = chess.MoveResult{}
	g.logger.Printf("ply %d: promoted to %s on %s", g.ply, kind, square)

	return g.complete(result)
}

// complete passes the turn after a finished move and checks, in order, for
// elimination, no legal moves, threefold repetition and the fifty-move rule.
func (g *Game) complete(result chess.MoveResult) Outcome {
	pos := g.pos
	mover := pos.ToMove
	opponent := mover.Opposite()

	out := Outcome{Kind: Applied, Result: result, TurnPassed: true}
	engine.PassTurn(pos)

	switch {
	case engine.IsEliminated(pos.Board, opponent):
		g.record()
		return g.end(out, winFor(mover))

	case engine.IsStalemate(pos):
		g.record()
		return g.end(out, drawBy(Stalemate))

	case engine.MustSkipTurn(pos):
		pos.ToMove = mover
		out.TurnPassed = false
		out.TurnSkipped = true
		g.logger.Printf("%s has no legal moves, turn skipped", opponent)
	}

	if g.record() >= engine.RepetitionLimit {
		return g.end(out, drawBy(ThreefoldRepetition))
	}
	if engine.IsFiftyMoveDraw(pos) {
		return g.end(out, drawBy(FiftyMoveRule))
	}

	out.Status = g.status
	out.Check = engine.IsInCheck(pos, pos.ToMove)
	return out
}

// record appends the current position to the history and returns its
// occurrence count.
func (g *Game) record() int {
	return g.history.Append(history.KeyOf(g.pos.Board, g.pos.ToMove))
}

func (g *Game) end(out Outcome, status Status) Outcome {
	g.status = status
	g.logger.Printf("game over after ply %d: %s", g.ply, status)
	out.GameEnded = true
	out.Status = status
	return out
}

func (g *Game) reject(err error) Outcome {
	g.logger.Printf("rejected: %v", err)
	return Outcome{Kind: Rejected, Err: err, Status: g.status}
}

// Status returns the current verdict.
func (g *Game) Status() Status {
	return g.status
}

// SideToMove returns the colour whose move it is. While a promotion is
// pending this is still the side that moved the pawn.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.ToMove
}

// Board returns a copy of the board.
func (g *Game) Board() *chess.Board {
	return g.pos.Board.Copy()
}

// Position returns a copy of the full position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// HalfmoveClock returns the number of moves since the last capture or pawn
// move.
func (g *Game) HalfmoveClock() uint {
	return g.pos.HalfmoveClock
}

// LastMove returns the most recently applied move, or chess.NoMove.
func (g *Game) LastMove() chess.Move {
	return g.pos.LastMove
}

// PendingPromotion returns the square of a pawn awaiting its promotion
// choice.
func (g *Game) PendingPromotion() (chess.Square, bool) {
	return g.pending, g.pending != chess.NoSquare
}

// RepetitionCount returns how often the current position has occurred.
func (g *Game) RepetitionCount() int {
	return g.history.Count(history.KeyOf(g.pos.Board, g.pos.ToMove))
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.PositionToFEN(g.pos)
}
