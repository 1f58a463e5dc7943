package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Draw thresholds.
const (
	// FiftyMoveLimit is the halfmove clock value (50 moves by each side)
	// at which the game is drawn.
	FiftyMoveLimit = 100

	// RepetitionLimit is the number of occurrences of a position that draws
	// the game.
	RepetitionLimit = 3
)

// IsFiftyMoveDraw returns true if the halfmove clock has reached the limit.
func IsFiftyMoveDraw(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}

// IsEliminated returns true if colour has no pieces left on the board.
func IsEliminated(board *chess.Board, colour chess.Colour) bool {
	return board.Count(colour) == 0
}

// IsStalemate returns true if neither side has a legal move.
func IsStalemate(pos *chess.Position) bool {
	return !HasLegalMoves(pos, chess.White) && !HasLegalMoves(pos, chess.Black)
}

// MustSkipTurn returns true if the side to move has no legal move while its
// opponent still has one, so the turn passes straight back.
func MustSkipTurn(pos *chess.Position) bool {
	return !HasLegalMoves(pos, pos.ToMove) && HasLegalMoves(pos, pos.ToMove.Opposite())
}
