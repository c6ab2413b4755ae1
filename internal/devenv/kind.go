// Package devenv provisions the local development environment: a kind
// cluster for the project and the project's compiled dependencies.
package devenv

import (
	"context"

	"github.com/wlame/kickoff/internal/exec"
)

// KindBinary is the cluster tool, resolved on PATH
const KindBinary = "kind"

// Cluster creates local clusters with the kind CLI.
type Cluster struct {
	runner exec.Runner
	dir    string
}

// NewCluster creates a Cluster running commands in dir.
func NewCluster(runner exec.Runner, dir string) *Cluster {
	return &Cluster{runner: runner, dir: dir}
}

// Create provisions a cluster named name.
// Equivalent to: kind create cluster --name <name>
//
// A half-created cluster is left in place if kind fails.
func (c *Cluster) Create(ctx context.Context, name string) error {
	return exec.Check(ctx, c.runner, exec.Command{
		Name: KindBinary,
		Args: []string{"create", "cluster", "--name", name},
		Dir:  c.dir,
	})
}
