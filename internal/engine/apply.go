package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ApplyMove applies a move already confirmed by IsLegal and returns its side
// effects. It updates the halfmove clock, removes an en passant victim,
// relocates the rook when castling, revokes castling rights, moves the piece
// and records the last move. It does not change the side to move: a pawn
// reaching the far rank leaves the move pending until Promote is called.
func ApplyMove(pos *chess.Position, from, to chess.Square) chess.MoveResult {
	board := pos.Board
	piece := board.Get(from)
	target := board.Get(to)

	result := chess.MoveResult{
		From:       from,
		To:         to,
		Piece:      piece,
		Captured:   target,
		CapturedOn: chess.NoSquare,
		RookFrom:   chess.NoSquare,
		RookTo:     chess.NoSquare,
	}
	if !target.IsEmpty() {
		result.CapturedOn = to
	}

	isPawn := piece.Kind == chess.Pawn
	enPassant := isPawn && IsEnPassant(pos, from, to)

	if isPawn || enPassant || !target.IsEmpty() {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	if enPassant {
		victim := chess.NewSquare(from.Row(), to.Col())
		result.Captured = board.Get(victim)
		result.CapturedOn = victim
		result.EnPassant = true
		board.Set(victim, chess.NoPiece)
	}

	if piece.Kind == chess.King && isCastlingMove(from, to) {
		rookFrom, rookTo := castlingRookSquares(from, to)
		board.Set(rookTo, board.Get(rookFrom))
		board.Set(rookFrom, chess.NoPiece)
		result.Castle = true
		result.RookFrom = rookFrom
		result.RookTo = rookTo
	}

	updateCastlingRights(pos, piece, from)

	board.Set(to, piece)
	board.Set(from, chess.NoPiece)

	if isPawn && to.Row() == chess.PromotionRow(piece.Colour) {
		result.PromotionPending = true
	}

	pos.LastMove = chess.Move{From: from, To: to}

	return result
}

// Promote replaces the pawn on sq with a piece of the given kind and the
// pawn's colour. It returns false, changing nothing, if sq holds no pawn on
// its promotion row or kind is not a promotion kind.
func Promote(pos *chess.Position, sq chess.Square, kind chess.Kind) bool {
	if !kind.IsPromotionKind() {
		return false
	}
	pawn := pos.Board.Get(sq)
	if pawn.Kind != chess.Pawn || sq.Row() != chess.PromotionRow(pawn.Colour) {
		return false
	}
	pos.Board.Set(sq, chess.MakePiece(pawn.Colour, kind))
	return true
}

// PassTurn hands the move to the other side, advancing the move number after
// a Black move.
func PassTurn(pos *chess.Position) {
	if pos.ToMove == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = pos.ToMove.Opposite()
}
