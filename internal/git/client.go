// Package git handles the version-control side of the bootstrap.
//
// Mutating operations (init, remote add, add, commit) shell out to the git
// binary so the repository ends up exactly as the user's own git would create
// it, hooks and global config included. Read-only inspection of the result
// uses go-git (see repository.go), which doesn't require the git binary.
package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/wlame/kickoff/internal/exec"
)

// Fixed repository settings. The initial repository always looks the same,
// whatever the user's global git configuration says.
const (
	// Binary is the git executable, resolved on PATH
	Binary = "git"

	// DefaultBranch is passed as init.defaultBranch
	DefaultBranch = "main"

	// RemoteName is the name the repository URL is registered under
	RemoteName = "origin"

	// CommitMessage is the message of the first commit
	CommitMessage = "Initial commit"
)

// ErrInvalidRemoteURL is returned by AddRemote for URLs git would misread
var ErrInvalidRemoteURL = errors.New("invalid remote URL")

// Client wraps git command invocations for one working directory
type Client struct {
	// runner executes the git binary
	runner exec.Runner

	// workDir is where the repository lives
	workDir string
}

// NewClient creates a new Git client running commands in workDir
func NewClient(runner exec.Runner, workDir string) *Client {
	return &Client{
		runner:  runner,
		workDir: workDir,
	}
}

// Init creates a new repository in the working directory
// Equivalent to: git -c init.defaultBranch=main init . --quiet
//
// The default branch is passed explicitly so the result doesn't depend on
// the user's global init.defaultBranch setting.
func (c *Client) Init(ctx context.Context) error {
	return c.run(ctx, "-c", "init.defaultBranch="+DefaultBranch, "init", ".", "--quiet")
}

// AddRemote registers url as origin
// Equivalent to: git remote add origin <url>
//
// git itself accepts any string here, including blanks, and would store a
// remote nothing can fetch from. A URL containing whitespace is rejected with
// ErrInvalidRemoteURL and git is not run.
func (c *Client) AddRemote(ctx context.Context, url string) error {
	if strings.IndexFunc(url, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w %q: must not contain whitespace", ErrInvalidRemoteURL, url)
	}
	return c.run(ctx, "remote", "add", RemoteName, url)
}

// WorkDir returns the working directory path
func (c *Client) WorkDir() string {
	return c.workDir
}

// run executes git with args in the working directory
// Any non-zero exit is returned as *exec.ExitError
func (c *Client) run(ctx context.Context, args ...string) error {
	return exec.Check(ctx, c.runner, exec.Command{
		Name: Binary,
		Args: args,
		Dir:  c.workDir,
	})
}
