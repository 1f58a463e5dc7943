package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsPathClear reports whether every square strictly between from and to is
// empty. The squares must share a row, a column or a diagonal; for other
// pairs the result is meaningless and callers confirm alignment first.
func IsPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row() - from.Row())
	colDir := sign(to.Col() - from.Col())

	row := from.Row() + rowDir
	col := from.Col() + colDir

	for row != to.Row() || col != to.Col() {
		if !board.Get(chess.NewSquare(row, col)).IsEmpty() {
			return false
		}
		row += rowDir
		col += colDir
	}

	return true
}

// isDiagonal reports whether from and to lie on the same diagonal.
func isDiagonal(from, to chess.Square) bool {
	rowDiff := abs(to.Row() - from.Row())
	colDiff := abs(to.Col() - from.Col())
	return rowDiff == colDiff && rowDiff != 0
}

// isStraight reports whether from and to share a row or a column.
func isStraight(from, to chess.Square) bool {
	if from == to {
		return false
	}
	return from.Row() == to.Row() || from.Col() == to.Col()
}

// canPieceMove checks the movement pattern of a non-pawn piece, including
// blocking, without looking at the destination's occupant. Kings are limited
// to one step here; castling is handled separately.
func canPieceMove(board *chess.Board, kind chess.Kind, from, to chess.Square) bool {
	rowDiff := abs(to.Row() - from.Row())
	colDiff := abs(to.Col() - from.Col())

	switch kind {
	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		return isDiagonal(from, to) && IsPathClear(board, from, to)

	case chess.Rook:
		return isStraight(from, to) && IsPathClear(board, from, to)

	case chess.Queen:
		return (isDiagonal(from, to) || isStraight(from, to)) && IsPathClear(board, from, to)

	case chess.King:
		return colDiff <= 1 && rowDiff <= 1 && (colDiff+rowDiff) > 0
	}

	return false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
