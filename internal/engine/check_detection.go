package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsSquareAttacked returns true if some piece of byColour could move onto sq
// by its movement rules, regardless of whose turn it is.
//
// Pawns follow their move rules exactly: they reach an empty square by a
// forward push and an enemy-held square by a diagonal capture, and en passant
// counts. Kings attack the eight adjacent squares only; castling never
// attacks anything. A square holding a byColour piece is not attacked by
// byColour, since nothing may capture its own side.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}
	board := pos.Board
	if target := board.Get(sq); !target.IsEmpty() && target.Colour == byColour {
		return false
	}

	for _, from := range board.Occupied(byColour) {
		piece := board.Get(from)
		if piece.Kind == chess.Pawn {
			if canPawnMove(pos, byColour, from, sq) {
				return true
			}
			continue
		}
		if canPieceMove(board, piece.Kind, from, sq) {
			return true
		}
	}

	return false
}

// IsInCheck returns true if the given colour's king is attacked.
// The result is informational only: moves that leave or put a king in check
// are not rejected. A colour without a king is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq := findKing(pos.Board, colour)
	if kingSq == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(pos, kingSq, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	for _, sq := range board.Occupied(colour) {
		if board.Get(sq).Kind == chess.King {
			return sq
		}
	}
	return chess.NoSquare
}
