package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalDestinations returns every square the piece on from may move to, in
// ascending square order. It returns nil for an empty square.
func LegalDestinations(pos *chess.Position, from chess.Square) []chess.Square {
	if pos.Board.Get(from).IsEmpty() {
		return nil
	}

	var dests []chess.Square
	for to := chess.Square(0); to < chess.NumSquares; to++ {
		if IsLegal(pos, from, to) {
			dests = append(dests, to)
		}
	}
	return dests
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// This is a brute-force scan of every (from, to) pair: at most 16×64 IsLegal
// calls for a full army.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for _, from := range pos.Board.Occupied(colour) {
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			if IsLegal(pos, from, to) {
				return true
			}
		}
	}
	return false
}

// CapturableSquares returns the squares holding colour's opponent pieces that
// colour can legally capture right now. A pawn exposed to en passant is
// reported on the square it stands on.
func CapturableSquares(pos *chess.Position, colour chess.Colour) []chess.Square {
	board := pos.Board
	marked := make(map[chess.Square]bool)

	for _, from := range board.Occupied(colour) {
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			if !IsLegal(pos, from, to) {
				continue
			}
			if !board.Get(to).IsEmpty() {
				marked[to] = true
			} else if IsEnPassant(pos, from, to) {
				marked[pos.LastMove.To] = true
			}
		}
	}

	var squares []chess.Square
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if marked[sq] {
			squares = append(squares, sq)
		}
	}
	return squares
}
