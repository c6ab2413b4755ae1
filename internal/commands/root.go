// Package commands implements all CLI commands for kickoff.
// It uses the Cobra library which is the standard for CLI applications in Go.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wlame/kickoff/internal/bootstrap"
	"github.com/wlame/kickoff/internal/config"
	"github.com/wlame/kickoff/internal/exec"
	"github.com/wlame/kickoff/internal/logging"
	"github.com/wlame/kickoff/internal/ui"
	"github.com/wlame/kickoff/pkg/version"
)

var (
	// cfgFile holds the path to the configuration file
	// This is set by the --config flag
	cfgFile string

	// verbose enables debug logging on stderr
	// This is set by the --verbose flag
	verbose bool

	// dryRun prints commands instead of running them
	dryRun bool

	// frameSleep holds each animation frame on screen
	frameSleep = time.Sleep
)

// rootCmd represents the base command when called without any subcommands
// Running it with no arguments performs the whole bootstrap sequence
var rootCmd = &cobra.Command{
	Use:   "kickoff",
	Short: "Bootstrap a freshly generated project",

	Long: `kickoff is the post-generation hook of the project template.

Run it once inside the generated project directory. It will:
  1. Initialize a git repository (default branch "main")
  2. Add the "origin" remote when a repository URL was provided
  3. Create a local kind cluster named after the project and run "make compile"
  4. Stage everything and create the initial commit
  5. Tell you how to get started

Values come from kickoff.toml (written by the template), KICKOFF_* environment
variables, or flags, in increasing order of precedence.

Example usage:
  # Run the bootstrap with the values rendered by the template
  kickoff

  # Show what would be executed
  kickoff --dry-run

  # Check that git, kind and make are installed
  kickoff doctor`,

	Args: cobra.NoArgs,

	// SilenceUsage prevents showing usage on errors
	SilenceUsage: true,

	// SilenceErrors prevents Cobra from printing errors
	// main decides what (if anything) to print
	SilenceErrors: true,

	RunE: runBootstrap,
}

// Execute is the main entry point for the CLI
// SIGINT/SIGTERM cancel the context, which kills the command in flight
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./kickoff.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"debug logging on stderr")

	// Project values; these override kickoff.toml and the environment
	rootCmd.Flags().String("repo-url", "", "remote repository URL (empty skips the remote)")
	rootCmd.Flags().String("slug", "", "project slug")
	rootCmd.Flags().String("dash-name", "", "project name with dashes, used as the cluster name")
	rootCmd.Flags().String("workdir", "", "directory to bootstrap (default: current directory)")
	rootCmd.Flags().String("log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"print the commands instead of running them")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
// It displays version information about the binary
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version, commit hash, and build time of kickoff.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())

		if verbose {
			fmt.Fprintln(out)
			info := version.Get()
			fmt.Fprintf(out, "Version:    %s\n", info.Version)
			fmt.Fprintf(out, "Commit:     %s\n", info.Commit)
			fmt.Fprintf(out, "Build Time: %s\n", info.BuildTime)
		}
	},
}

// runBootstrap loads the configuration and runs the bootstrap sequence
func runBootstrap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	log.WithFields(logrus.Fields{
		"slug":    cfg.Project.Slug,
		"cluster": cfg.Project.DashName,
		"workdir": cfg.Project.WorkDir,
		"dry_run": dryRun,
		"version": version.Short(),
	}).Debug("starting bootstrap")

	out := ui.NewPrinter(cmd.OutOrStdout()).WithSleep(frameSleep)

	var runner exec.Runner
	if dryRun {
		runner = exec.NewDryRunner(cmd.ErrOrStderr())
	} else {
		runner = exec.NewRealRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), log)
	}

	b := bootstrap.New(cfg, runner, out, log)
	if dryRun {
		b.WithoutInspection()
	}
	if err := b.Run(cmd.Context()); err != nil {
		return err
	}

	if dryRun {
		out.Hint("Dry run: nothing was executed.")
	}
	return nil
}

// loadConfig loads and validates the configuration for cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the stderr diagnostic logger for cfg
func newLogger(cfg *config.Config) *logrus.Logger {
	level := cfg.LogLevel()
	if verbose {
		level = logrus.DebugLevel
	}
	return logging.New(level, os.Stderr)
}

// ExitCode returns the process exit code for an error returned by Execute
//   - nil: 0
//   - an external command failed: that command's exit code
//   - interrupted: 130
//   - anything else: 1
func ExitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return bootstrap.ExitCode(err)
}

// IsCommandFailure reports whether err is an external command exiting non-zero.
// The command already printed its own diagnostics in that case.
func IsCommandFailure(err error) bool {
	_, ok := exec.ExitCode(err)
	return ok
}

// PrintError prints an error message to stderr
// This is a helper function for consistent error formatting
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
}
