// Package bootstrap runs the post-generation sequence for a freshly rendered project.
//
// The sequence is fixed:
//  1. init        - create the git repository
//  2. remote      - register origin (skipped with a warning when no URL is set)
//  3. environment - create the kind cluster, compile dependencies
//  4. commit      - stage everything and make the initial commit
//  5. notify      - celebrate and print next steps
//
// Steps run in order and the first failure aborts the rest. Nothing is retried
// and nothing already done is rolled back.
package bootstrap

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/wlame/kickoff/internal/config"
	"github.com/wlame/kickoff/internal/devenv"
	"github.com/wlame/kickoff/internal/exec"
	"github.com/wlame/kickoff/internal/git"
	"github.com/wlame/kickoff/internal/ui"
)

// Step name constants.
const (
	StepInit        = "init"
	StepRemote      = "remote"
	StepEnvironment = "environment"
	StepCommit      = "commit"
	StepNotify      = "notify"
)

// Step is one stage of the bootstrap sequence.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Bootstrapper wires the collaborators for one run.
type Bootstrapper struct {
	cfg     *config.Config
	git     *git.Client
	cluster *devenv.Cluster
	builder *devenv.Builder
	out     *ui.Printer
	log     logrus.FieldLogger

	// inspect enables the go-git HEAD report after the commit step
	inspect bool
}

// New creates a Bootstrapper. All external commands go through runner and run
// in cfg.Project.WorkDir.
func New(cfg *config.Config, runner exec.Runner, out *ui.Printer, log logrus.FieldLogger) *Bootstrapper {
	dir := cfg.Project.WorkDir
	return &Bootstrapper{
		cfg:     cfg,
		git:     git.NewClient(runner, dir),
		cluster: devenv.NewCluster(runner, dir),
		builder: devenv.NewBuilder(runner, dir),
		out:     out,
		log:     log,
		inspect: true,
	}
}

// WithoutInspection disables reading the new repository back after the
// commit. Used for dry runs, where no repository is created.
func (b *Bootstrapper) WithoutInspection() *Bootstrapper {
	b.inspect = false
	return b
}

// Steps returns the sequence in execution order.
func (b *Bootstrapper) Steps() []Step {
	return []Step{
		{Name: StepInit, Run: b.initRepository},
		{Name: StepRemote, Run: b.configureRemote},
		{Name: StepEnvironment, Run: b.setupEnvironment},
		{Name: StepCommit, Run: b.sealCommit},
		{Name: StepNotify, Run: b.notify},
	}
}

// Run executes every step in order and stops at the first failure.
// The returned error is a *StepError wrapping the step's cause.
func (b *Bootstrapper) Run(ctx context.Context) error {
	for _, step := range b.Steps() {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: step.Name, Err: err}
		}

		log := b.log.WithField("step", step.Name)
		log.Debug("step started")
		if err := step.Run(ctx); err != nil {
			log.WithError(err).Debug("step failed")
			return &StepError{Step: step.Name, Err: err}
		}
		log.Debug("step finished")
	}
	return nil
}

func (b *Bootstrapper) initRepository(ctx context.Context) error {
	b.out.Info("Initializing git repository...")
	b.out.Info("Current working directory: %s", absPath(b.git.WorkDir()))

	if err := b.git.Init(ctx); err != nil {
		return err
	}

	b.out.Success("Git repository initialized.")
	return nil
}

func (b *Bootstrapper) configureRemote(ctx context.Context) error {
	url := b.cfg.Project.RepoURL
	if url == "" {
		b.out.Warning("No repo_url provided. Skipping git remote configuration.")
		return nil
	}

	b.out.Info("repo_url: %s", url)
	if err := b.git.AddRemote(ctx, url); err != nil {
		return err
	}
	b.out.Success("Remote %s=%s added.", git.RemoteName, url)
	return nil
}

func (b *Bootstrapper) setupEnvironment(ctx context.Context) error {
	if err := b.cluster.Create(ctx, b.cfg.Project.DashName); err != nil {
		return err
	}
	if err := b.builder.Compile(ctx); err != nil {
		return err
	}

	b.out.Plain("Dependencies compiled successfully.")
	return nil
}

func (b *Bootstrapper) sealCommit(ctx context.Context) error {
	b.out.Plain("Performing initial commit.")

	if err := b.git.StageAll(ctx); err != nil {
		return err
	}
	if err := b.git.Commit(ctx); err != nil {
		return err
	}

	if b.inspect {
		b.reportHead()
	}
	return nil
}

// reportHead reads the fresh commit back with go-git. Problems here are
// logged and never fail the run: the commit itself already succeeded.
func (b *Bootstrapper) reportHead() {
	repo, err := git.Open(b.cfg.Project.WorkDir)
	if err != nil {
		b.log.WithError(err).Warn("cannot inspect new repository")
		return
	}

	summary, err := repo.Summarize()
	if err != nil {
		b.log.WithError(err).Warn("cannot read initial commit")
		return
	}
	b.out.Info("%s %s on %s", summary.Message, summary.ShortHash(), summary.Branch)
	for _, name := range sortedKeys(summary.Remotes) {
		b.out.Info("Remote %s -> %s", name, summary.Remotes[name])
	}

	if clean, err := repo.IsClean(); err == nil && !clean {
		b.log.Debug("worktree has changes that were not committed")
	}
}

func (b *Bootstrapper) notify(_ context.Context) error {
	b.out.Celebrate(b.cfg.Project.Slug)
	b.out.Success("Project initialized, keep up the good work!!")
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func absPath(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
