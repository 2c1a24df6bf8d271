// Package envcheck verifies the external tools chromectl depends on.
package envcheck

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/tOgg1/chromectl/internal/config"
)

// ErrMissingDependency indicates a required external dependency is absent.
var ErrMissingDependency = errors.New("missing dependency")

// Swappable for tests.
var (
	statFunc     = os.Stat
	lookPathFunc = exec.LookPath
)

// Verify checks that the Chrome binary exists and osascript is on the
// search path. It must pass before any other operation runs.
func Verify(cfg *config.Config) error {
	if _, err := statFunc(cfg.Chrome.BinaryPath); err != nil {
		return fmt.Errorf("%w: Chrome binary not found at %s", ErrMissingDependency, cfg.Chrome.BinaryPath)
	}
	if _, err := lookPathFunc("osascript"); err != nil {
		return fmt.Errorf("%w: osascript not found on PATH, AppleScript automation unavailable", ErrMissingDependency)
	}
	return nil
}
