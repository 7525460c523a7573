package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/cellui/backend"
	"github.com/lixenwraith/cellui/config"
	"github.com/lixenwraith/cellui/graphics"
)

func newDebugBackend(t *testing.T, script string) backend.Backend {
	t.Helper()
	b, err := backend.NewDebug(backend.Options{
		Script: script,
		Size:   graphics.Size{Width: 80, Height: 25},
		Output: io.Discard,
	})
	if err != nil {
		t.Fatalf("Expected script to parse, got %v", err)
	}
	return b
}

func TestDemoQuitButtonStopsEarly(t *testing.T) {
	b := newDebugBackend(t, "Key.Pressed(Down)\nKey.Pressed(Alt+Q)\nKey.Pressed(Down)\nKey.Pressed(Down)\nKey.Pressed(Down)\nKey.Pressed(Down)")
	if err := runApp(b, config.Default(), nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	r, ok := b.(interface{ Remaining() int })
	if !ok {
		t.Fatalf("Expected the debug backend to report remaining commands")
	}
	if r.Remaining() == 0 {
		t.Errorf("Expected Quit to stop the run before the script ended")
	}
}

func TestDemoRejectsBadTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Theme.WindowBack = "plaid"
	if err := runApp(newDebugBackend(t, ""), cfg, nil); err == nil {
		t.Errorf("Expected the theme error")
	}
}

func TestScriptCommandReportsAssertion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fail.txt")
	if err := os.WriteFile(path, []byte("CheckHash(0x1)\n"), 0600); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	cfg = config.Default()
	scriptCmd.SetOut(io.Discard)
	err := runScript(scriptCmd, []string{path})
	var ae *backend.AssertionError
	if !errors.As(err, &ae) {
		t.Fatalf("Expected an AssertionError, got %v", err)
	}
}

func TestScriptCommandPasses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.txt")
	if err := os.WriteFile(path, []byte("Key.Pressed(Tab)\nKey.Pressed(Escape)\n"), 0600); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	cfg = config.Default()
	scriptCmd.SetOut(io.Discard)
	if err := runScript(scriptCmd, []string{path}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}
