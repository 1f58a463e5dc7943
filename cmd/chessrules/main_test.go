package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestRun_ClosesFiles(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "events.log")
	outPath := filepath.Join(dir, "out.txt")

	cfg := config.NewConfig()
	cfg.Store.Enabled = false

	code := run(cfg, logPath, outPath, strings.NewReader("e2e4\nquit\n"))
	testutil.AssertEqual(t, code, 0)
	testutil.AssertEqual(t, cfg.Verbosity, config.Verbose, "log file raises verbosity")

	for name, w := range map[string]interface{}{"log": cfg.LogFile, "output": cfg.OutputFile} {
		file, ok := w.(*os.File)
		if !ok {
			t.Fatalf("%s writer is %T, want *os.File", name, w)
		}
		if _, err := file.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
			t.Errorf("%s file write after run: err = %v, want os.ErrClosed", name, err)
		}
	}

	out, err := os.ReadFile(outPath)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(out), "e2e4")

	logged, err := os.ReadFile(logPath)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(logged), "ply 1")
}

func TestRun_BadPaths(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "file")

	cfg := config.NewConfig()
	cfg.Store.Enabled = false
	testutil.AssertEqual(t, run(cfg, missing, "", strings.NewReader("")), 1)

	cfg = config.NewConfig()
	cfg.Store.Enabled = false
	testutil.AssertEqual(t, run(cfg, "", missing, strings.NewReader("")), 1)
}
