package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.Board.Get(sq("e1")) == chess.W(chess.King) &&
					p.Board.Get(sq("e8")) == chess.B(chess.King) &&
					p.Board.Get(sq("e2")) == chess.W(chess.Pawn) &&
					p.Board.Get(sq("e7")) == chess.B(chess.Pawn) &&
					p.ToMove == chess.White &&
					p.Castling == chess.AllCastlingRights() &&
					p.LastMove.IsNone() &&
					p.MoveNumber == 1
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Board.Get(sq("e4")) == chess.W(chess.Pawn) &&
					p.Board.Get(sq("e2")).IsEmpty() &&
					p.ToMove == chess.Black &&
					p.LastMove == chess.Move{From: sq("e2"), To: sq("e4")}
			},
		},
		{
			name: "partial castling and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 7 42",
			checkFn: func(p *chess.Position) bool {
				return p.Castling.White == chess.SideRights{KingSide: true} &&
					p.Castling.Black == chess.SideRights{QueenSide: true} &&
					p.HalfmoveClock == 7 &&
					p.MoveNumber == 42
			},
		},
		{
			name: "placement only",
			fen:  "8/8/8/8/8/8/8/4K3",
			checkFn: func(p *chess.Position) bool {
				return p.ToMove == chess.White &&
					p.Castling == chess.CastlingRights{} &&
					p.HalfmoveClock == 0 &&
					p.MoveNumber == 1 &&
					p.Board.Count(chess.White) == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPositionFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewPositionFromFEN(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("NewPositionFromFEN(%q) produced unexpected position", tt.fen)
			}
		})
	}
}

func TestNewPositionFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"long rank", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "x7/8/8/8/8/8/8/8 w - - 0 1"},
		{"non-ASCII piece", "\u01507/8/8/8/8/8/8/8 w - - 0 1"},
		{"non-ASCII lowercase piece", "\u01717/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w X - 0 1"},
		{"bad en passant square", "8/8/8/8/8/8/8/8 w - z9 0 1"},
		{"en passant without pawn", "8/8/8/8/8/8/8/8 b - e3 0 1"},
		{"bad halfmove clock", "8/8/8/8/8/8/8/8 w - - x 1"},
		{"zero move number", "8/8/8/8/8/8/8/8 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPositionFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewPositionFromFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestPositionToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 7 42",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos := mustFEN(t, fen)
		if got := PositionToFEN(pos); got != fen {
			t.Errorf("PositionToFEN round trip:\n got  %q\n want %q", got, fen)
		}
	}
}

func TestPositionToFEN_AfterMoves(t *testing.T) {
	pos := chess.NewInitialPosition()

	ApplyMove(pos, sq("e2"), sq("e4"))
	PassTurn(pos)
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := PositionToFEN(pos); got != want {
		t.Errorf("after e2e4 FEN = %q, want %q", got, want)
	}

	ApplyMove(pos, sq("g8"), sq("f6"))
	PassTurn(pos)
	want = "rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2"
	if got := PositionToFEN(pos); got != want {
		t.Errorf("after g8f6 FEN = %q, want %q", got, want)
	}
}

func TestMustPositionFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPositionFromFEN did not panic on invalid FEN")
		}
	}()
	MustPositionFromFEN("not a fen")
}
