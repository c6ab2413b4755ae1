// Package exec provides a stub-friendly interface for running external commands.
//
// Every external tool kickoff talks to (git, kind, make) is invoked through the
// Runner interface. Production code uses RealRunner, --dry-run uses DryRunner,
// and tests use the recording fake in exec/exectest.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Command describes a single external command invocation.
type Command struct {
	// Name is the binary to run (looked up on PATH)
	Name string

	// Args are passed verbatim, no shell is involved
	Args []string

	// Dir is the working directory (optional, defaults to the process cwd)
	// The process environment is always inherited unchanged
	Dir string
}

// String renders the command the way a user would type it in a shell.
// Arguments containing spaces or quotes are single-quoted.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

// Result holds the outcome of a command that ran to completion.
type Result struct {
	ExitCode int
}

// Runner is the interface for running external commands.
type Runner interface {
	// Run executes cmd and blocks until it exits.
	// A non-zero exit is reported through Result.ExitCode with a nil error.
	// The error is reserved for execution failures (binary not found, ctx canceled).
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExitError reports a command that exited with a non-zero status.
type ExitError struct {
	Command Command
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit status %d", e.Command, e.Code)
}

// ExitCode returns the exit code carried by err, if any.
// It returns (0, false) when err does not wrap an *ExitError.
func ExitCode(err error) (int, bool) {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code, true
	}
	return 0, false
}

// Check runs cmd through r and converts a non-zero exit into an *ExitError.
// This is what the domain clients use: every invocation they make must succeed.
func Check(ctx context.Context, r Runner, cmd Command) error {
	res, err := r.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", cmd, err)
	}
	if res.ExitCode != 0 {
		return &ExitError{Command: cmd, Code: res.ExitCode}
	}
	return nil
}

// RealRunner runs commands with os/exec.
// Output is inherited (streamed to the given writers) rather than captured, so
// the tools' own diagnostics reach the user unmodified.
type RealRunner struct {
	stdout io.Writer
	stderr io.Writer
	log    logrus.FieldLogger
}

// NewRealRunner creates a RealRunner streaming to stdout/stderr.
func NewRealRunner(stdout, stderr io.Writer, log logrus.FieldLogger) *RealRunner {
	return &RealRunner{stdout: stdout, stderr: stderr, log: log}
}

// Run executes the command and waits for it.
func (r *RealRunner) Run(ctx context.Context, c Command) (Result, error) {
	r.log.WithFields(logrus.Fields{"cmd": c.String(), "dir": c.Dir}).Debug("running command")

	cmd := osexec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}

	err := cmd.Run()
	if err != nil {
		// A canceled context kills the child; report the cancellation, not the signal exit.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{ExitCode: -1}, ctxErr
		}
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			r.log.WithField("code", exitErr.ExitCode()).Debug("command exited non-zero")
			return Result{ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{ExitCode: -1}, err
	}

	return Result{ExitCode: 0}, nil
}

// LookPath reports where a binary resolves on PATH.
func LookPath(name string) (string, error) {
	return osexec.LookPath(name)
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"$`\\") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
