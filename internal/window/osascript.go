package window

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/tOgg1/chromectl/internal/logging"
)

// Swappable for tests.
var runOsascriptFunc = runOsascript

// OsascriptAutomator drives application windows through AppleScript,
// invoking the system osascript interpreter.
type OsascriptAutomator struct {
	// AppName is the application AppleScript addresses, e.g. "Google Chrome".
	AppName string
}

// WindowCount asks the application how many windows it has open.
func (o *OsascriptAutomator) WindowCount() (int, error) {
	script := fmt.Sprintf("tell application %q to count of windows", o.AppName)
	out, err := runOsascriptFunc(script)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s windows: %w", o.AppName, err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("unexpected osascript window count %q: %w", strings.TrimSpace(out), err)
	}
	return n, nil
}

// SetBounds issues one AppleScript that repositions every window. A
// window closed between counting and applying makes the whole script
// fail; callers treat that as a non-fatal automation failure.
func (o *OsascriptAutomator) SetBounds(placements []Bounds) error {
	var b strings.Builder
	fmt.Fprintf(&b, "tell application %q\n", o.AppName)
	for i, p := range placements {
		fmt.Fprintf(&b, "set bounds of window %d to {%d, %d, %d, %d}\n", i+1, p.X1, p.Y1, p.X2, p.Y2)
	}
	b.WriteString("end tell")

	script := b.String()
	logging.Debug().Int("windows", len(placements)).Msg("applying window bounds via osascript")
	if _, err := runOsascriptFunc(script); err != nil {
		return fmt.Errorf("failed to set %s window bounds: %w", o.AppName, err)
	}
	return nil
}

// runOsascript executes an AppleScript source string and returns its
// stdout.
func runOsascript(script string) (string, error) {
	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("osascript: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(out), nil
}
