package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPawnMove checks the pawn rules for a move from from to to. The caller has
// already rejected friendly-occupied destinations.
func canPawnMove(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	board := pos.Board
	dir := chess.Forward(colour)
	rowDiff := to.Row() - from.Row()
	colDiff := to.Col() - from.Col()
	target := board.Get(to)

	switch {
	case colDiff == 0:
		// Straight moves never capture.
		if !target.IsEmpty() {
			return false
		}
		if rowDiff == dir {
			return true
		}
		if rowDiff == 2*dir && from.Row() == chess.PawnRow(colour) {
			return board.Get(from.Offset(dir, 0)).IsEmpty()
		}
		return false

	case abs(colDiff) == 1 && rowDiff == dir:
		if !target.IsEmpty() {
			return target.Colour != colour
		}
		return IsEnPassant(pos, from, to)
	}

	return false
}

// enPassantRow returns the row a colour's pawn must stand on to capture en passant.
func enPassantRow(colour chess.Colour) int {
	return chess.PawnRow(colour.Opposite()) + 2*chess.Forward(colour.Opposite())
}

// IsEnPassant reports whether moving the pawn on from to to is an en passant
// capture: the last move was an enemy pawn advancing two squares to land
// beside the mover, and to is the square it passed over.
func IsEnPassant(pos *chess.Position, from, to chess.Square) bool {
	board := pos.Board
	pawn := board.Get(from)
	if pawn.Kind != chess.Pawn {
		return false
	}

	last := pos.LastMove
	if last.IsNone() {
		return false
	}
	passed := board.Get(last.To)
	if !passed.Is(pawn.Colour.Opposite(), chess.Pawn) {
		return false
	}
	if last.From.Col() != last.To.Col() || abs(last.To.Row()-last.From.Row()) != 2 {
		return false
	}

	return from.Row() == enPassantRow(pawn.Colour) &&
		last.To.Row() == from.Row() &&
		abs(from.Col()-last.To.Col()) == 1 &&
		to.Col() == last.To.Col() &&
		to.Row() == from.Row()+chess.Forward(pawn.Colour) &&
		board.Get(to).IsEmpty()
}

// EnPassantTarget returns the square passed over by the last move if it was a
// two-square pawn advance, or NoSquare otherwise.
func EnPassantTarget(pos *chess.Position) chess.Square {
	last := pos.LastMove
	if last.IsNone() || pos.Board.Get(last.To).Kind != chess.Pawn {
		return chess.NoSquare
	}
	if last.From.Col() != last.To.Col() || abs(last.To.Row()-last.From.Row()) != 2 {
		return chess.NoSquare
	}
	return chess.NewSquare((last.From.Row()+last.To.Row())/2, last.To.Col())
}
