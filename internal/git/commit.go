package git

import "context"

// StageAll stages the whole working tree
// Equivalent to: git add .
func (c *Client) StageAll(ctx context.Context) error {
	return c.run(ctx, "add", ".")
}

// Commit creates the initial commit
// Equivalent to: git commit -m 'Initial commit' --quiet
//
// The message travels as a single argument, no shell quoting is involved.
// Fails when nothing is staged, which is what makes a second bootstrap run
// in the same directory fail.
func (c *Client) Commit(ctx context.Context) error {
	return c.run(ctx, "commit", "-m", CommitMessage, "--quiet")
}
