package chess

// SideRights holds the two castling flags of one colour.
type SideRights struct {
	KingSide  bool
	QueenSide bool
}

// CastlingRights holds both colours' castling flags. Flags are only ever
// cleared, never restored, during a game.
type CastlingRights struct {
	White SideRights
	Black SideRights
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		White: SideRights{KingSide: true, QueenSide: true},
		Black: SideRights{KingSide: true, QueenSide: true},
	}
}

// For returns the flags of the given colour.
func (r CastlingRights) For(colour Colour) SideRights {
	if colour == White {
		return r.White
	}
	return r.Black
}

// Has reports whether colour may still castle on the given side.
func (r CastlingRights) Has(colour Colour, kingSide bool) bool {
	s := r.For(colour)
	if kingSide {
		return s.KingSide
	}
	return s.QueenSide
}

// Clear removes one castling right.
func (r *CastlingRights) Clear(colour Colour, kingSide bool) {
	s := &r.Black
	if colour == White {
		s = &r.White
	}
	if kingSide {
		s.KingSide = false
	} else {
		s.QueenSide = false
	}
}

// ClearAll removes both castling rights of a colour.
func (r *CastlingRights) ClearAll(colour Colour) {
	r.Clear(colour, true)
	r.Clear(colour, false)
}

// Position is the full rules state of a game at one point: the board plus
// everything legality and draw detection depend on.
type Position struct {
	Board *Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// The most recently applied move, NoMove at the start.
	LastMove Move

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after each Black move.
	MoveNumber uint
}

// NewPosition returns an empty position with White to move.
func NewPosition() *Position {
	return &Position{
		Board:      NewBoard(),
		ToMove:     White,
		LastMove:   NoMove,
		MoveNumber: 1,
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.Board.SetupInitialPosition()
	p.Castling = AllCastlingRights()
	return p
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	np := *p
	np.Board = p.Board.Copy()
	return &np
}
