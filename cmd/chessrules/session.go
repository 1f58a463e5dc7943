// session.go - Command loop driving a game
package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const commandHelp = `  e2e4 | e2 e4 | e2-e4   move the piece on e2 to e4
  promote q|r|b|n         choose the kind for a pawn on the last rank
  moves e2                list the legal destinations of the piece on e2
  captures                list enemy pieces the side to move can capture
  status                  show the game status
  fen                     show the position as FEN
  new                     start a new game
  save NAME               save the game
  load NAME               load a saved game
  delete NAME             delete a saved game
  list                    list saved games
  help                    show this help
  quit                    leave
`

var errNoStore = stderrors.New("saved games are disabled")

// promotionNames maps the accepted promotion words to kinds.
var promotionNames = map[string]chess.Kind{
	"q": chess.Queen, "queen": chess.Queen,
	"r": chess.Rook, "rook": chess.Rook,
	"b": chess.Bishop, "bishop": chess.Bishop,
	"n": chess.Knight, "knight": chess.Knight,
}

// Session reads commands and applies them to one game.
type Session struct {
	cfg   *config.Config
	game  *game.Synchronized
	store *storage.Store // nil when saving is disabled
	out   io.Writer
}

// NewSession creates a session playing a new game configured by cfg. store
// may be nil.
func NewSession(cfg *config.Config, store *storage.Store) (*Session, error) {
	g, err := game.New(
		game.FromFEN(cfg.Game.StartFEN),
		game.WithLogger(cfg.Logger()),
	)
	if err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, game: game.NewSynchronized(g), store: store, out: cfg.OutputFile}, nil
}

// Run executes commands from r, one per line, until quit or end of input.
func (s *Session) Run(r io.Reader) error {
	s.prompt()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s.Execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs one command line and reports whether the session should end.
func (s *Session) Execute(line string) bool {
	args := splitArgsLine(line)
	if len(args) == 0 {
		return false
	}

	cmd := strings.ToLower(args[0])
	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
	case "new":
		s.game.Reset()
		s.println("new game")
		s.prompt()
	case "fen":
		s.println("%s", s.game.FEN())
	case "status":
		s.println("%s", s.statusLine())
	case "moves":
		s.moves(args[1:])
	case "captures":
		s.println("%s", formatSquares(s.game.Capturable()))
	case "promote":
		s.promote(args[1:])
	case "save", "load", "delete":
		s.storeCommand(cmd, args[1:])
	case "list":
		s.list()
	default:
		move, ok := parseMoveArgs(args)
		if !ok {
			s.println("unknown command %q (try help)", args[0])
			return false
		}
		s.report(s.game.AttemptMove(move.From, move.To))
	}
	return false
}

func (s *Session) moves(args []string) {
	if len(args) != 1 {
		s.println("usage: moves SQUARE")
		return
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		s.println("%v", err)
		return
	}
	s.println("%s", formatSquares(s.game.LegalDestinations(sq)))
}

func (s *Session) promote(args []string) {
	if len(args) != 1 {
		s.println("usage: promote q|r|b|n")
		return
	}
	kind, ok := promotionNames[strings.ToLower(args[0])]
	if !ok {
		kind = chess.Empty
	}
	sq, _ := s.game.PendingPromotion()
	s.report(s.game.ChoosePromotion(sq, kind))
}

func (s *Session) storeCommand(cmd string, args []string) {
	if len(args) != 1 {
		s.println("usage: %s NAME", cmd)
		return
	}
	if s.store == nil {
		s.println("%v", errNoStore)
		return
	}

	name := args[0]
	var err error
	switch cmd {
	case "save":
		err = s.store.SaveGame(name, s.game.Snapshot())
	case "load":
		var snap game.Snapshot
		if snap, err = s.store.LoadGame(name); err == nil {
			err = s.game.Restore(snap)
		}
	case "delete":
		err = s.store.DeleteGame(name)
	}

	if err != nil {
		s.println("%s failed: %v", cmd, err)
		return
	}
	s.println("%s %s: ok", cmd, name)
	if cmd == "load" {
		s.println("%s", s.statusLine())
	}
}

func (s *Session) list() {
	if s.store == nil {
		s.println("%v", errNoStore)
		return
	}
	names, err := s.store.ListGames()
	if err != nil {
		s.println("list failed: %v", err)
		return
	}
	if len(names) == 0 {
		s.println("(no saved games)")
		return
	}
	for _, name := range names {
		s.println("%s", name)
	}
}

// report prints an outcome and, for normal verbosity, what happens next.
func (s *Session) report(out game.Outcome) {
	if out.Kind == game.Rejected {
		s.println("%s", rejection(out.Err))
		return
	}
	s.println("%s", out)
	if out.Kind == game.AwaitingPromotion {
		s.println("promote q|r|b|n")
		return
	}
	if !out.GameEnded {
		s.prompt()
	}
}

// rejection turns a rejection error into a message.
func rejection(err error) string {
	var moveErr *errors.MoveError
	switch {
	case stderrors.Is(err, errors.ErrGameEnded):
		return "the game is over (new to play again)"
	case stderrors.Is(err, errors.ErrPromotionPending):
		return "choose a promotion first: promote q|r|b|n"
	case stderrors.Is(err, errors.ErrNoPendingPromotion):
		return "no pawn is waiting to promote"
	case stderrors.Is(err, errors.ErrInvalidPromotion):
		return "invalid promotion: choose q, r, b or n"
	case stderrors.As(err, &moveErr) && moveErr.Reason != "":
		return "illegal move: " + moveErr.Reason
	}
	return "rejected: " + err.Error()
}

func (s *Session) statusLine() string {
	status := s.game.Status()
	if status.Ended() {
		return status.String()
	}
	line := fmt.Sprintf("%s, %s to move, move %d", status, s.game.SideToMove(), s.game.Position().MoveNumber)
	if n := s.game.RepetitionCount(); n > 1 {
		line += fmt.Sprintf(", position seen %d times", n)
	}
	if sq, ok := s.game.PendingPromotion(); ok {
		line += ", promotion pending on " + sq.String()
	}
	return line
}

func (s *Session) prompt() {
	if s.cfg.Verbosity >= config.Normal {
		s.println("%s to move", s.game.SideToMove())
	}
}

func (s *Session) println(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// parseMoveArgs reads "e2e4", "e2-e4" or "e2 e4".
func parseMoveArgs(args []string) (chess.Move, bool) {
	text := strings.Join(args, "")
	text = strings.ReplaceAll(text, "-", "")
	move, err := game.ParseMove(strings.ToLower(text))
	return move, err == nil
}

func formatSquares(squares []chess.Square) string {
	if len(squares) == 0 {
		return "(none)"
	}
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return strings.Join(names, " ")
}

// splitArgsLine splits a command line on whitespace, keeping single- or
// double-quoted text together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
