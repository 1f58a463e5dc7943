package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// OutcomeKind classifies the answer to a move attempt or promotion choice.
type OutcomeKind int

const (
	// Rejected means nothing changed; Err says why.
	Rejected OutcomeKind = iota
	// AwaitingPromotion means the pawn move was applied and a promotion
	// kind must be chosen before the turn can pass.
	AwaitingPromotion
	// Applied means the move completed.
	Applied
)

func (k OutcomeKind) String() string {
	switch k {
	case Rejected:
		return "rejected"
	case AwaitingPromotion:
		return "awaiting promotion"
	case Applied:
		return "applied"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome describes the result of AttemptMove or ChoosePromotion.
type Outcome struct {
	Kind OutcomeKind
	Err  error

	// Result holds the board delta for AwaitingPromotion and Applied.
	Result chess.MoveResult

	// TurnPassed is set when the opponent now has the move. TurnSkipped is
	// set instead when the opponent had no legal move and the mover goes
	// again.
	TurnPassed  bool
	TurnSkipped bool

	GameEnded bool
	Status    Status

	// Check reports whether the king of the side now to move is attacked.
	// It is informational only.
	Check bool
}

// OK reports whether the attempt changed the game.
func (o Outcome) OK() bool {
	return o.Kind != Rejected
}

func (o Outcome) String() string {
	switch o.Kind {
	case Rejected:
		return fmt.Sprintf("rejected: %v", o.Err)
	case AwaitingPromotion:
		return fmt.Sprintf("%s%s: choose promotion on %s", o.Result.From, o.Result.To, o.Result.To)
	}

	text := o.Result.From.String() + o.Result.To.String()
	if o.Result.Promotion != chess.Empty {
		text += "=" + string(o.Result.Promotion.Letter())
	}
	switch {
	case o.GameEnded:
		text += ", " + o.Status.String()
	case o.TurnSkipped:
		text += ", opponent has no legal moves, turn skipped"
	case o.Check:
		text += ", check"
	}
	return text
}
