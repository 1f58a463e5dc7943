// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Start position as FEN (default: standard position)")

	// Saved games
	dbDir    = flag.String("db", "", "Saved game database directory (default: platform data dir)")
	noStore  = flag.Bool("nostore", false, "Disable the saved game database")
	memStore = flag.Bool("memstore", false, "Keep saved games in memory only")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write the game event log to this file")
	verbose    = flag.Bool("v", false, "Log game events")
	quiet      = flag.Bool("q", false, "Print outcomes only")

	// Information
	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.Game.StartFEN = *startFEN
	}

	cfg.Store.Enabled = !*noStore
	cfg.Store.Dir = *dbDir
	cfg.Store.InMemory = *memStore

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	}
}
