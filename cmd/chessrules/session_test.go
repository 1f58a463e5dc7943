package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/storage"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// runScript plays the command lines in script and returns everything printed.
func runScript(t *testing.T, fen string, store *storage.Store, script ...string) (string, *Session) {
	t.Helper()
	var out bytes.Buffer
	b := config.NewConfigBuilder().WithOutput(&out).WithVerbosity(config.Normal)
	if fen != "" {
		b.WithStartFEN(fen)
	}

	session, err := NewSession(b.Build(), store)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	if err := session.Run(strings.NewReader(strings.Join(script, "\n"))); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return out.String(), session
}

func newMemStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSession_Moves(t *testing.T) {
	out, session := runScript(t, "", nil, "e2e4", "e7 e5", "fen", "quit", "g1f3")

	testutil.AssertContains(t, out, "White to move")
	testutil.AssertContains(t, out, "e2e4\nBlack to move")
	testutil.AssertContains(t, out, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	testutil.AssertEqual(t, session.game.Snapshot().Ply, 2, "quit stops the script")
}

func TestSession_IllegalMove(t *testing.T) {
	out, session := runScript(t, "", nil, "e2-e5", "e7e5")

	testutil.AssertContains(t, out, "illegal move: Pawn cannot move there")
	testutil.AssertContains(t, out, "illegal move: White to move")
	testutil.AssertEqual(t, session.game.Snapshot().Ply, 0)
}

func TestSession_Status(t *testing.T) {
	out, _ := runScript(t, "", nil, "status", "g1f3", "g8f6", "status")

	testutil.AssertContains(t, out, "in progress, White to move, move 1")
	testutil.AssertContains(t, out, "in progress, White to move, move 2")
}

func TestSession_StatusRepetition(t *testing.T) {
	out, _ := runScript(t, "", nil, "g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "status")

	testutil.AssertContains(t, out, "in progress, White to move, move 4, position seen 2 times")
}

func TestSession_LegalDestinations(t *testing.T) {
	out, _ := runScript(t, "", nil, "moves g1", "moves e4", "moves z9", "moves")

	testutil.AssertContains(t, out, "f3 h3\n")
	testutil.AssertContains(t, out, "(none)\n")
	testutil.AssertContains(t, out, "invalid square")
	testutil.AssertContains(t, out, "usage: moves SQUARE")
}

func TestSession_Captures(t *testing.T) {
	out, _ := runScript(t, "4k3/8/8/3pP3/8/2n5/1P6/4K3 w - d6 0 2", nil, "captures")
	testutil.AssertContains(t, out, "d5 c3\n")
}

func TestSession_Promotion(t *testing.T) {
	out, session := runScript(t, "8/P7/8/8/8/8/8/k6K w - - 0 1", nil,
		"promote q", "a7a8", "h1h2", "promote k", "promote q")

	testutil.AssertContains(t, out, "no pawn is waiting to promote")
	testutil.AssertContains(t, out, "a7a8: choose promotion on a8")
	testutil.AssertContains(t, out, "choose a promotion first")
	testutil.AssertContains(t, out, "invalid promotion")
	testutil.AssertContains(t, out, "a7a8=Q, check")
	testutil.AssertEqual(t, session.game.SideToMove().String(), "Black")
}

func TestSession_GameOver(t *testing.T) {
	out, _ := runScript(t, "4k3/4Q3/8/8/8/8/8/4K3 w - - 0 1", nil, "e7e8", "e1e2", "status", "new", "status")

	testutil.AssertContains(t, out, "e7e8, white wins")
	testutil.AssertContains(t, out, "the game is over")
	testutil.AssertContains(t, out, "white wins\nnew game")
	testutil.AssertContains(t, out, "in progress, White to move, move 1")
}

func TestSession_SaveLoad(t *testing.T) {
	store := newMemStore(t)

	out, session := runScript(t, "", store,
		"e2e4", "save 'my game'", "new", "list", "load 'my game'", "fen",
		"delete 'my game'", "list", "load 'my game'")

	testutil.AssertContains(t, out, "save my game: ok")
	testutil.AssertContains(t, out, "my game\n")
	testutil.AssertContains(t, out, "load my game: ok")
	testutil.AssertContains(t, out, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertContains(t, out, "(no saved games)")
	testutil.AssertContains(t, out, "load failed")
	testutil.AssertEqual(t, session.game.Snapshot().Ply, 1)
}

func TestSession_NoStore(t *testing.T) {
	out, _ := runScript(t, "", nil, "save x", "list", "save")

	testutil.AssertContains(t, out, "saved games are disabled")
	testutil.AssertContains(t, out, "usage: save NAME")
}

func TestSession_UnknownAndHelp(t *testing.T) {
	out, _ := runScript(t, "", nil, "", "dance", "help")

	testutil.AssertContains(t, out, `unknown command "dance"`)
	testutil.AssertContains(t, out, "promote q|r|b|n")
}

func TestSession_QuietVerbosity(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithVerbosity(config.Quiet).Build()
	session, err := NewSession(cfg, nil)
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, session.Run(strings.NewReader("e2e4\n")))
	testutil.AssertEqual(t, out.String(), "e2e4\n")
}

func TestNewSession_BadFEN(t *testing.T) {
	cfg := config.NewConfigBuilder().WithStartFEN("bad").Build()
	_, err := NewSession(cfg, nil)
	testutil.AssertTrue(t, err != nil, "bad start position rejected")
}

func TestSplitArgsLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple args", "a b c", []string{"a", "b", "c"}},
		{"double quoted string", `save "my game"`, []string{"save", "my game"}},
		{"single quoted string", `load 'my game'`, []string{"load", "my game"}},
		{"empty string", "", nil},
		{"tabs as separators", "e2\te4", []string{"e2", "e4"}},
		{"multiple spaces", "e2   e4", []string{"e2", "e4"}},
		{"leading and trailing spaces", "  moves e2  ", []string{"moves", "e2"}},
		{"empty quotes", `save ""`, []string{"save", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitArgsLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitArgsLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseMoveArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
		ok   bool
	}{
		{[]string{"e2e4"}, "e2e4", true},
		{[]string{"E2-E4"}, "e2e4", true},
		{[]string{"e2", "e4"}, "e2e4", true},
		{[]string{"e2"}, "", false},
		{[]string{"i2i4"}, "", false},
	}

	for _, tt := range tests {
		move, ok := parseMoveArgs(tt.args)
		if ok != tt.ok {
			t.Errorf("parseMoveArgs(%v) ok = %v, want %v", tt.args, ok, tt.ok)
			continue
		}
		if ok && move.String() != tt.want {
			t.Errorf("parseMoveArgs(%v) = %v, want %s", tt.args, move, tt.want)
		}
	}
}
