// Package provision generates isolated data directories and launcher
// scripts for numbered Chrome instances.
package provision

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tOgg1/chromectl/internal/logging"
)

// ErrInvalidRange indicates the requested instance range is empty.
var ErrInvalidRange = errors.New("invalid instance range")

// Options controls launcher script generation.
type Options struct {
	// ChromePath is the Chrome binary the generated scripts invoke.
	ChromePath string

	// BaseDebugPort is the remote debugging port of the first instance
	// in the range.
	BaseDebugPort int

	// ScriptPrefix is prepended to the instance index to form the
	// launcher script filename.
	ScriptPrefix string
}

// ScriptPath returns the launcher script path for one instance index.
func (o Options) ScriptPath(baseDir string, index int) string {
	return filepath.Join(baseDir, o.ScriptPrefix+strconv.Itoa(index)+".sh")
}

// DataDir returns the data directory path for one instance index.
func DataDir(baseDir string, index int) string {
	return filepath.Join(baseDir, strconv.Itoa(index))
}

// Port returns the debug port for an instance index within [start, end].
func (o Options) Port(start, index int) int {
	return o.BaseDebugPort + index - start
}

// Script returns the launcher script content for one instance. The
// script backgrounds Chrome with an isolated user data directory and a
// unique remote debugging port.
func (o Options) Script(dataDir string, port int) string {
	return fmt.Sprintf("#!/bin/bash\n%q --user-data-dir=%q --remote-debugging-port=%d &\n",
		o.ChromePath, dataDir, port)
}

// Create provisions one data directory and one executable launcher
// script per index in [start, end] under baseDir. Directories already
// present are left untouched; scripts are rewritten deterministically.
// One progress line per script is written to progress.
func Create(opts Options, start, end int, baseDir string, progress io.Writer) error {
	if start > end {
		return fmt.Errorf("%w: start %d > end %d", ErrInvalidRange, start, end)
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	for i := start; i <= end; i++ {
		dataDir := DataDir(baseDir, i)
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
		}

		port := opts.Port(start, i)
		scriptPath := opts.ScriptPath(baseDir, i)
		if err := os.WriteFile(scriptPath, []byte(opts.Script(dataDir, port)), 0o755); err != nil {
			return fmt.Errorf("failed to write launcher script %s: %w", scriptPath, err)
		}
		// WriteFile's mode is filtered by the umask; chmod to guarantee 0755.
		if err := os.Chmod(scriptPath, 0o755); err != nil {
			return fmt.Errorf("failed to mark %s executable: %w", scriptPath, err)
		}

		logging.Debug().Int("instance", i).Int("port", port).Str("script", scriptPath).Msg("provisioned instance")
		fmt.Fprintf(progress, "created %s\n", scriptPath)
	}

	return nil
}
