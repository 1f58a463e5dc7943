// Package engine provides chess move validation and board manipulation.
//
// The rules implemented here deliberately differ from FIDE chess in two ways:
// a move is never rejected for leaving the mover's own king attacked, and
// kings may be captured like any other piece. Games are won by eliminating
// every enemy piece rather than by checkmate.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsLegal reports whether the piece on from may move to to in pos. The mover
// is whatever piece stands on from; whose turn it is is checked by the caller.
func IsLegal(pos *chess.Position, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	board := pos.Board
	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}

	// Capturing a friendly piece is never legal.
	if target := board.Get(to); !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(pos, piece.Colour, from, to)

	case chess.King:
		if isCastlingMove(from, to) {
			return CanCastle(pos, from, to)
		}
		return canPieceMove(board, chess.King, from, to)

	default:
		return canPieceMove(board, piece.Kind, from, to)
	}
}

// Explain returns a short reason why a move is rejected, or "" if IsLegal
// would accept it. Used to give callers a readable rejection.
func Explain(pos *chess.Position, from, to chess.Square) string {
	if !from.Valid() || !to.Valid() {
		return "square off the board"
	}
	if from == to {
		return "source and destination are the same square"
	}
	piece := pos.Board.Get(from)
	if piece.IsEmpty() {
		return "no piece on " + from.String()
	}
	if target := pos.Board.Get(to); !target.IsEmpty() && target.Colour == piece.Colour {
		return "cannot capture own " + target.Kind.String()
	}
	if piece.Kind == chess.King && isCastlingMove(from, to) && !CanCastle(pos, from, to) {
		return "castling not allowed"
	}
	if !IsLegal(pos, from, to) {
		return piece.Kind.String() + " cannot move there"
	}
	return ""
}
