package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Repository is a read-only view of a repository on disk
// It wraps the go-git Repository type and adds convenience methods
type Repository struct {
	// repo is the underlying go-git repository
	repo *git.Repository
}

// Summary describes the current HEAD of a repository
type Summary struct {
	// Branch is the short branch name HEAD points to (e.g. "main")
	Branch string

	// Hash is the full commit SHA
	Hash string

	// Message is the commit message without trailing newline
	Message string

	// Remotes maps remote names to their first URL
	Remotes map[string]string
}

// ShortHash returns the first 7 characters of the commit hash
func (s Summary) ShortHash() string {
	if len(s.Hash) <= 7 {
		return s.Hash
	}
	return s.Hash[:7]
}

// Open opens an existing Git repository at the specified path
//
// Parameters:
//
//	path - The directory path where the repository is located
//
// Returns:
//
//	*Repository - The opened repository
//	error - Any error that occurred
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// Summarize reads HEAD, its commit, and the configured remotes
func (r *Repository) Summarize() (*Summary, error) {
	// HEAD points to the current commit
	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}

	remotes, err := r.Remotes()
	if err != nil {
		return nil, err
	}

	return &Summary{
		Branch:  ref.Name().Short(),
		Hash:    ref.Hash().String(),
		Message: trimNewline(commit.Message),
		Remotes: remotes,
	}, nil
}

// Remotes maps each configured remote name to its first URL
// Works on a repository without commits
func (r *Repository) Remotes() (map[string]string, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	urls := make(map[string]string, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		if len(cfg.URLs) > 0 {
			urls[cfg.Name] = cfg.URLs[0]
		}
	}
	return urls, nil
}

// IsClean reports whether the worktree has no uncommitted changes
func (r *Repository) IsClean() (bool, error) {
	w, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := w.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status: %w", err)
	}

	return status.IsClean(), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
