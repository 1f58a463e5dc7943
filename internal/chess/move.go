package chess

// Move is a (from, to) pair of squares.
type Move struct {
	From Square
	To   Square
}

// NoMove is the last move of a position in which nothing has been played.
var NoMove = Move{From: NoSquare, To: NoSquare}

// IsNone reports whether m is NoMove.
func (m Move) IsNone() bool {
	return !m.From.Valid() || !m.To.Valid()
}

// String returns the move as two coordinate names, e.g. "e2e4".
func (m Move) String() string {
	if m.IsNone() {
		return "-"
	}
	return m.From.String() + m.To.String()
}

// MoveResult describes the side effects of applying a move, for the benefit of
// whatever renders the board.
type MoveResult struct {
	From  Square
	To    Square
	Piece Piece

	// Captured is the piece removed by the move (NoPiece if none) and
	// CapturedOn the square it stood on. For en passant CapturedOn differs
	// from To.
	Captured   Piece
	CapturedOn Square
	EnPassant  bool

	// Castle is set when the king moved two columns; RookFrom/RookTo give the
	// rook relocation.
	Castle   bool
	RookFrom Square
	RookTo   Square

	// PromotionPending is set when a pawn reached the far rank and the
	// promotion kind has not been chosen yet. Promotion holds the kind once
	// chosen.
	PromotionPending bool
	Promotion        Kind
}

// IsCapture returns true if this move removed an enemy piece.
func (r MoveResult) IsCapture() bool {
	return !r.Captured.IsEmpty()
}
