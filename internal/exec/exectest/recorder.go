// Package exectest provides a recording Runner for tests.
package exectest

import (
	"context"
	"strings"

	"github.com/wlame/kickoff/internal/exec"
)

// Recorder is an exec.Runner that records every command instead of running it.
// Commands whose rendered form starts with a key in Fail exit with that code.
type Recorder struct {
	Commands []exec.Command

	// Fail maps a command prefix (e.g. "git commit") to the exit code to return.
	Fail map[string]int

	// Err, when set, is returned for every command as an execution failure.
	Err error
}

// Run records cmd and returns the configured outcome.
func (r *Recorder) Run(_ context.Context, cmd exec.Command) (exec.Result, error) {
	r.Commands = append(r.Commands, cmd)
	if r.Err != nil {
		return exec.Result{ExitCode: -1}, r.Err
	}
	line := cmd.String()
	for prefix, code := range r.Fail {
		if strings.HasPrefix(line, prefix) {
			return exec.Result{ExitCode: code}, nil
		}
	}
	return exec.Result{ExitCode: 0}, nil
}

// Lines returns the recorded commands rendered as shell lines.
func (r *Recorder) Lines() []string {
	lines := make([]string, 0, len(r.Commands))
	for _, c := range r.Commands {
		lines = append(lines, c.String())
	}
	return lines
}
