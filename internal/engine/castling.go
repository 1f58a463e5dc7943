package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Corner columns of the castling rooks.
const (
	queenRookCol = 0
	kingRookCol  = chess.BoardSize - 1
)

// isCastlingMove reports whether a king move from from to to has the
// two-column shape of castling.
func isCastlingMove(from, to chess.Square) bool {
	return from.Row() == to.Row() && abs(to.Col()-from.Col()) == 2
}

// CanCastle checks whether the king on from may castle to to. The side's
// right must be set, its rook must still stand on the original corner, the
// squares between king and rook must be empty, and no square the king
// occupies or crosses, from its current square to its destination
// inclusive, may be attacked by the opponent.
func CanCastle(pos *chess.Position, from, to chess.Square) bool {
	board := pos.Board
	king := board.Get(from)
	if king.Kind != chess.King || !isCastlingMove(from, to) {
		return false
	}

	colour := king.Colour
	row := chess.HomeRow(colour)
	if from.Row() != row {
		return false
	}

	kingSide := to.Col() > from.Col()
	if !pos.Castling.Has(colour, kingSide) {
		return false
	}

	rookCol := queenRookCol
	if kingSide {
		rookCol = kingRookCol
	}
	rookSq := chess.NewSquare(row, rookCol)
	if !board.Get(rookSq).Is(colour, chess.Rook) {
		return false
	}

	if !IsPathClear(board, from, rookSq) {
		return false
	}

	step := sign(to.Col() - from.Col())
	opponent := colour.Opposite()
	for col := from.Col(); ; col += step {
		if IsSquareAttacked(pos, chess.NewSquare(row, col), opponent) {
			return false
		}
		if col == to.Col() {
			break
		}
	}

	return true
}

// castlingRookSquares returns where the rook moves from and to when the king
// castles from from to to: the corner rook lands beside the king's
// destination on the side the king came from.
func castlingRookSquares(from, to chess.Square) (rookFrom, rookTo chess.Square) {
	row := from.Row()
	if to.Col() > from.Col() {
		return chess.NewSquare(row, kingRookCol), chess.NewSquare(row, to.Col()-1)
	}
	return chess.NewSquare(row, queenRookCol), chess.NewSquare(row, to.Col()+1)
}

// updateCastlingRights removes castling rights when a king moves, or when a
// rook leaves its original corner.
func updateCastlingRights(pos *chess.Position, piece chess.Piece, from chess.Square) {
	switch piece.Kind {
	case chess.King:
		pos.Castling.ClearAll(piece.Colour)

	case chess.Rook:
		if from.Row() != chess.HomeRow(piece.Colour) {
			return
		}
		switch from.Col() {
		case kingRookCol:
			pos.Castling.Clear(piece.Colour, true)
		case queenRookCol:
			pos.Castling.Clear(piece.Colour, false)
		}
	}
}
