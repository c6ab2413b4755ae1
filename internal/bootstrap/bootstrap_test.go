package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlame/kickoff/internal/config"
	"github.com/wlame/kickoff/internal/exec/exectest"
	"github.com/wlame/kickoff/internal/git"
	"github.com/wlame/kickoff/internal/logging"
	"github.com/wlame/kickoff/internal/ui"
)

func testConfig(slug, dash, repoURL string) *config.Config {
	return &config.Config{
		Project: config.ProjectConfig{RepoURL: repoURL, Slug: slug, DashName: dash, WorkDir: "."},
		Log:     config.LogConfig{Level: "warn"},
	}
}

type harness struct {
	b      *Bootstrapper
	rec    *exectest.Recorder
	out    *bytes.Buffer
	delays []time.Duration
}

func newHarness(cfg *config.Config, rec *exectest.Recorder) *harness {
	h := &harness{rec: rec, out: &bytes.Buffer{}}
	printer := ui.NewPrinter(h.out).WithSleep(func(d time.Duration) { h.delays = append(h.delays, d) })
	h.b = New(cfg, rec, printer, logging.Discard()).WithoutInspection()
	return h
}

func TestRun_FullSequenceInOrder(t *testing.T) {
	h := newHarness(testConfig("demo", "demo-proj", "git@github.com:acme/demo.git"), &exectest.Recorder{})

	require.NoError(t, h.b.Run(context.Background()))

	want := []string{
		"git -c init.defaultBranch=main init . --quiet",
		"git remote add origin git@github.com:acme/demo.git",
		"kind create cluster --name demo-proj",
		"make compile",
		"git add .",
		"git commit -m 'Initial commit' --quiet",
	}
	if diff := cmp.Diff(want, h.rec.Lines()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	// User-visible milestones appear in step order
	out := h.out.String()
	milestones := []string{
		"Initializing git repository...",
		"Current working directory: ",
		"Git repository initialized.",
		"repo_url: git@github.com:acme/demo.git",
		"Remote origin=git@github.com:acme/demo.git added.",
		"Dependencies compiled successfully.",
		"Performing initial commit.",
		"Congrats! Your demo project is ready!",
		"Project initialized, keep up the good work!!",
	}
	last := -1
	for _, m := range milestones {
		idx := strings.Index(out, m)
		require.GreaterOrEqual(t, idx, 0, "missing %q", m)
		assert.Greater(t, idx, last, "%q out of order", m)
		last = idx
	}
}

func TestRun_StepOrder(t *testing.T) {
	h := newHarness(testConfig("demo", "demo", ""), &exectest.Recorder{})

	var names []string
	for _, s := range h.b.Steps() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{StepInit, StepRemote, StepEnvironment, StepCommit, StepNotify}, names)
}

func TestRun_EmptyRepoURLSkipsRemote(t *testing.T) {
	h := newHarness(testConfig("demo", "demo", ""), &exectest.Recorder{})

	require.NoError(t, h.b.Run(context.Background()))

	for _, line := range h.rec.Lines() {
		assert.NotContains(t, line, "remote add")
	}
	assert.Len(t, h.rec.Commands, 5)
	assert.Contains(t, h.out.String(),
		ui.Warning+"No repo_url provided. Skipping git remote configuration."+ui.Terminator)
}

func TestRun_RepoURLAddsExactlyOneRemote(t *testing.T) {
	urls := []string{
		"git@github.com:acme/demo.git",
		"https://gitlab.example.com/group/demo.git",
		"/srv/git/demo.git",
	}

	for _, url := range urls {
		t.Run(url, func(t *testing.T) {
			h := newHarness(testConfig("demo", "demo", url), &exectest.Recorder{})
			require.NoError(t, h.b.Run(context.Background()))

			var remotes [][]string
			for _, c := range h.rec.Commands {
				if len(c.Args) >= 2 && c.Args[0] == "remote" && c.Args[1] == "add" {
					remotes = append(remotes, c.Args)
				}
			}
			require.Len(t, remotes, 1)
			assert.Equal(t, []string{"remote", "add", "origin", url}, remotes[0])
			assert.NotContains(t, h.out.String(), "No repo_url provided")
		})
	}
}

func TestRun_WhitespaceRepoURLFailsAtRemote(t *testing.T) {
	for _, url := range []string{"   ", "https://example.com/a b.git"} {
		t.Run(url, func(t *testing.T) {
			h := newHarness(testConfig("demo", "demo", url), &exectest.Recorder{})

			err := h.b.Run(context.Background())
			require.ErrorIs(t, err, git.ErrInvalidRemoteURL)
			assert.Equal(t, StepRemote, FailedStep(err))
			assert.Equal(t, 1, ExitCode(err))

			assert.Equal(t, []string{"git -c init.defaultBranch=main init . --quiet"}, h.rec.Lines())
			assert.NotContains(t, h.out.String(), "added.")
			assert.Empty(t, h.delays)
		})
	}
}

func TestRun_FailureStopsSequence(t *testing.T) {
	tests := []struct {
		name         string
		failPrefix   string
		code         int
		wantStep     string
		wantCommands int
	}{
		{"init fails", "git -c init.defaultBranch", 128, StepInit, 1},
		{"remote add fails", "git remote add", 3, StepRemote, 2},
		{"cluster create fails", "kind create cluster", 1, StepEnvironment, 3},
		{"compile fails", "make compile", 2, StepEnvironment, 4},
		{"stage fails", "git add", 128, StepCommit, 5},
		{"commit fails", "git commit", 1, StepCommit, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &exectest.Recorder{Fail: map[string]int{tt.failPrefix: tt.code}}
			h := newHarness(testConfig("demo", "demo-proj", "git@github.com:acme/demo.git"), rec)

			err := h.b.Run(context.Background())
			require.Error(t, err)

			assert.Equal(t, tt.wantStep, FailedStep(err))
			assert.Equal(t, tt.code, ExitCode(err))
			assert.Len(t, h.rec.Commands, tt.wantCommands, "no command may run after the failing one")
			assert.True(t, strings.HasPrefix(h.rec.Lines()[len(h.rec.Lines())-1], tt.failPrefix))

			assert.NotContains(t, h.out.String(), "Congrats!")
			assert.NotContains(t, h.out.String(), "Project initialized")
			assert.Empty(t, h.delays, "notify must not run")
		})
	}
}

func TestRun_ClusterLeftInPlaceWhenCompileFails(t *testing.T) {
	rec := &exectest.Recorder{Fail: map[string]int{"make compile": 2}}
	h := newHarness(testConfig("demo", "demo-proj", ""), rec)

	require.Error(t, h.b.Run(context.Background()))
	for _, line := range h.rec.Lines() {
		assert.NotContains(t, line, "delete cluster")
	}
}

func TestRun_DemoProject(t *testing.T) {
	h := newHarness(testConfig("demo", "demo-proj", ""), &exectest.Recorder{})

	require.NoError(t, h.b.Run(context.Background()))

	assert.Contains(t, h.rec.Lines(), "kind create cluster --name demo-proj")
	out := h.out.String()
	assert.Contains(t, out, "cd demo\n")
	assert.Contains(t, out, "tilt up")
}

func TestRun_AnimationPlaysFourPairs(t *testing.T) {
	h := newHarness(testConfig("demo", "demo", ""), &exectest.Recorder{})

	require.NoError(t, h.b.Run(context.Background()))

	out := h.out.String()
	assert.Equal(t, 4, strings.Count(out, ui.FrameA))
	assert.Equal(t, 4, strings.Count(out, ui.FrameB))
	assert.Len(t, h.delays, 8)
}

func TestRun_ExecutionErrorIsExitOne(t *testing.T) {
	rec := &exectest.Recorder{Err: errors.New("exec: \"git\": executable file not found in $PATH")}
	h := newHarness(testConfig("demo", "demo", ""), rec)

	err := h.b.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, StepInit, FailedStep(err))
	assert.Equal(t, 1, ExitCode(err))
	assert.Len(t, h.rec.Commands, 1)
}

func TestRun_CanceledContext(t *testing.T) {
	h := newHarness(testConfig("demo", "demo", ""), &exectest.Recorder{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.b.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StepInit, FailedStep(err))
	assert.Empty(t, h.rec.Commands)
}

func TestExitCodeAndFailedStep(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
	assert.Equal(t, "", FailedStep(errors.New("boom")))

	err := &StepError{Step: StepCommit, Err: errors.New("boom")}
	assert.Equal(t, "commit: boom", err.Error())
	assert.Equal(t, StepCommit, FailedStep(err))
}
