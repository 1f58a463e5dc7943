package chess

// Board holds the contents of the 64 squares. It carries no rules knowledge.
type Board struct {
	squares [NumSquares]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting setup.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Set(NewSquare(HomeRow(Black), col), B(backRank[col]))
		b.Set(NewSquare(PawnRow(Black), col), B(Pawn))
		b.Set(NewSquare(PawnRow(White), col), W(Pawn))
		b.Set(NewSquare(HomeRow(White), col), W(backRank[col]))
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.squares = [NumSquares]Piece{}
}

// Get returns the piece on sq, or NoPiece if the square is empty or off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq]
}

// Set places a piece on sq. Setting NoPiece empties the square.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.squares[sq] = piece
	}
}

// Occupied returns the squares holding pieces of the given colour, in
// ascending square order.
func (b *Board) Occupied(colour Colour) []Square {
	var squares []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.squares[sq]
		if !p.IsEmpty() && p.Colour == colour {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for _, p := range b.squares {
		if !p.IsEmpty() && p.Colour == colour {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	return b.squares == other.squares
}
