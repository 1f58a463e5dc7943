// chessrules plays a game of chess from commands read on standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	os.Exit(run(cfg, *logFile, *outputFile, os.Stdin))
}

// run plays the commands read from in and returns the exit status. Files it
// opens are closed before it returns.
func run(cfg *config.Config, logPath, outputPath string, in io.Reader) int {
	if logPath != "" {
		file, err := setupLogFile(cfg, logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", logPath, err)
			return 1
		}
		defer file.Close()
	}

	if outputPath != "" {
		file, err := setupOutputFile(cfg, outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", outputPath, err)
			return 1
		}
		defer file.Close()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	session, err := NewSession(cfg, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := session.Run(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile opens the log file and raises the verbosity so game events
// are written to it. The caller closes the file.
func setupLogFile(cfg *config.Config, path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, err
	}
	cfg.LogFile = file
	if cfg.Verbosity < config.Verbose {
		cfg.Verbosity = config.Verbose
	}
	return file, nil
}

// setupOutputFile creates the output file and directs output to it. The
// caller closes the file.
func setupOutputFile(cfg *config.Config, path string) (*os.File, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	cfg.SetOutput(file)
	return file, nil
}

// openStore opens the saved game database, or returns nil when it is
// disabled. Failing to open it only disables saving.
func openStore(cfg *config.Config) *storage.Store {
	if !cfg.Store.Enabled {
		return nil
	}

	var (
		store *storage.Store
		err   error
	)
	switch {
	case cfg.Store.InMemory:
		store, err = storage.OpenInMemory()
	default:
		dir := cfg.Store.Dir
		if dir == "" {
			dir, err = storage.DefaultDir()
			if err != nil {
				break
			}
		}
		store, err = storage.Open(dir)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saved games disabled: %v\n", err)
		return nil
	}
	return store
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a game of chess from commands read on standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprint(os.Stderr, commandHelp)
}
