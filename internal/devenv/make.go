package devenv

import (
	"context"

	"github.com/wlame/kickoff/internal/exec"
)

// Build entry point declared by the generated Makefile
const (
	MakeBinary    = "make"
	CompileTarget = "compile"
)

// Builder runs the project's declared build entry point.
type Builder struct {
	runner exec.Runner
	dir    string
}

// NewBuilder creates a Builder running in dir.
func NewBuilder(runner exec.Runner, dir string) *Builder {
	return &Builder{runner: runner, dir: dir}
}

// Compile runs the build target. Equivalent to: make compile
func (b *Builder) Compile(ctx context.Context) error {
	return exec.Check(ctx, b.runner, exec.Command{
		Name: MakeBinary,
		Args: []string{CompileTarget},
		Dir:  b.dir,
	})
}
