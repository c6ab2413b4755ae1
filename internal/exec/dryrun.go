package exec

import (
	"context"
	"fmt"
	"io"
)

// DryRunner prints commands instead of running them.
// Every command is reported as successful.
type DryRunner struct {
	w io.Writer
}

// NewDryRunner creates a DryRunner writing "+ <cmd>" lines to w.
func NewDryRunner(w io.Writer) *DryRunner {
	return &DryRunner{w: w}
}

// Run prints the command and returns a zero exit code.
func (d *DryRunner) Run(ctx context.Context, c Command) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{ExitCode: -1}, err
	}
	fmt.Fprintln(d.w, "+ "+c.String())
	return Result{ExitCode: 0}, nil
}
