package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// Only success paths are exercised here: a failing assertion would fail
// this test too.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42, "value should be %d", 42)
	AssertEqual(t, []chess.Square{1, 2, 3}, []chess.Square{1, 2, 3})
	AssertEqual(t, chess.W(chess.Queen), chess.W(chess.Queen), "pieces")
	AssertEqual(t, nil, nil)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", chesserrors.ErrInvalidMove)
	AssertErrorIs(t, wrapped, chesserrors.ErrInvalidMove)
	AssertErrorIs(t, nil, nil)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, 1 == 1, "math works")
	AssertFalse(t, false)
	AssertFalse(t, errors.Is(nil, chesserrors.ErrGameEnded))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string with args", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string first arg", []interface{}{42}, "42"},
		{"multiple format args", []interface{}{"%s on %s", "rook", "a1"}, "rook on a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustPosition(t *testing.T) {
	pos := MustPosition(t, "4k3/8/8/8/8/8/8/4K3 b - - 3 9")
	AssertEqual(t, pos.ToMove, chess.Black)
	AssertEqual(t, pos.Board.Get(MustSquare(t, "e8")), chess.B(chess.King))
	AssertEqual(t, pos.HalfmoveClock, uint(3))
}

func TestMustSquares(t *testing.T) {
	got := MustSquares(t, "a8", "h8", "a1", "h1")
	want := []chess.Square{0, 7, 56, 63}
	AssertEqual(t, got, want)
}
