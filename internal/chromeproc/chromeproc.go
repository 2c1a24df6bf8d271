// Package chromeproc takes point-in-time snapshots of running Chrome
// processes and recognizes the ones started by a chromectl launcher.
package chromeproc

import (
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// userDataDirFlag marks a process launched with an isolated profile.
// Launcher scripts always pass it, so it identifies managed instances.
const userDataDirFlag = "--user-data-dir="

const debugPortFlag = "--remote-debugging-port="

// Instance is a read-only view of one running Chrome process.
type Instance struct {
	PID         int32
	Name        string
	CommandLine []string
}

// IsManaged reports whether the process looks like an instance started
// by a launcher script: name matches and the command line carries the
// isolated user-data-directory flag.
func (in Instance) IsManaged(processName string) bool {
	return in.Name == processName &&
		strings.Contains(strings.Join(in.CommandLine, " "), userDataDirFlag)
}

// DataDir returns the instance's isolated data directory, or "" when
// the flag is absent.
func (in Instance) DataDir() string {
	return in.flagValue(userDataDirFlag)
}

// DebugPort returns the instance's remote debugging port as passed on
// the command line, or "" when the flag is absent.
func (in Instance) DebugPort() string {
	return in.flagValue(debugPortFlag)
}

func (in Instance) flagValue(flag string) string {
	for _, arg := range in.CommandLine {
		if strings.HasPrefix(arg, flag) {
			return strings.TrimPrefix(arg, flag)
		}
	}
	return ""
}

// Swappable for tests.
var snapshotFunc = snapshot

// List returns the managed instances running right now. The snapshot is
// best-effort: processes that exit or hide their info mid-enumeration
// are skipped. An empty result is valid and means nothing to arrange.
func List(processName string) ([]Instance, error) {
	all, err := snapshotFunc()
	if err != nil {
		return nil, err
	}

	var managed []Instance
	for _, in := range all {
		if in.IsManaged(processName) {
			managed = append(managed, in)
		}
	}
	return managed, nil
}

// snapshot enumerates every visible OS process.
func snapshot() ([]Instance, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	instances := make([]Instance, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		cmdline, err := p.CmdlineSlice()
		if err != nil {
			continue
		}
		instances = append(instances, Instance{
			PID:         p.Pid,
			Name:        name,
			CommandLine: cmdline,
		})
	}
	return instances, nil
}
