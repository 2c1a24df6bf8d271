package envcheck

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tOgg1/chromectl/internal/config"
)

func testConfigWithBinary(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	binary := filepath.Join(t.TempDir(), "Google Chrome")
	if err := os.WriteFile(binary, []byte("#!/bin/bash\n"), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	cfg.Chrome.BinaryPath = binary
	return cfg
}

func TestVerifyPassesWithBothDependencies(t *testing.T) {
	original := lookPathFunc
	defer func() { lookPathFunc = original }()
	lookPathFunc = func(string) (string, error) { return "/usr/bin/osascript", nil }

	if err := Verify(testConfigWithBinary(t)); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyFailsWhenChromeMissing(t *testing.T) {
	original := lookPathFunc
	defer func() { lookPathFunc = original }()
	lookPathFunc = func(string) (string, error) { return "/usr/bin/osascript", nil }

	cfg := config.DefaultConfig()
	cfg.Chrome.BinaryPath = filepath.Join(t.TempDir(), "does-not-exist")

	err := Verify(cfg)
	if !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
	if !strings.Contains(err.Error(), cfg.Chrome.BinaryPath) {
		t.Fatalf("error should name the missing binary path: %v", err)
	}
}

func TestVerifyFailsWhenOsascriptMissing(t *testing.T) {
	original := lookPathFunc
	defer func() { lookPathFunc = original }()
	lookPathFunc = func(string) (string, error) { return "", fs.ErrNotExist }

	err := Verify(testConfigWithBinary(t))
	if !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("expected ErrMissingDependency, got %v", err)
	}
	if !strings.Contains(err.Error(), "osascript") {
		t.Fatalf("error should name osascript: %v", err)
	}
}
