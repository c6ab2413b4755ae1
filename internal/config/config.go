// Package config handles loading and managing configuration for kickoff.
// It uses Viper to support multiple configuration sources: files, environment variables, and CLI flags.
//
// The project template renders a kickoff.toml next to the generated sources with
// the values the user answered (repository URL, slug, dash name). Everything else
// has sensible defaults and rarely needs to be touched.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the main configuration structure for kickoff
// It maps directly to the TOML configuration file structure
//
// Only per-project inputs live here. The commands themselves (git, kind,
// make), the remote name, the commit message and the animation are fixed and
// defined next to the code that uses them.
type Config struct {
	// Project holds the values resolved by the template at generation time
	Project ProjectConfig `mapstructure:"project"`

	// Git controls how the repository URL is interpreted
	Git GitConfig `mapstructure:"git"`

	// Log controls diagnostic logging on stderr
	Log LogConfig `mapstructure:"log"`
}

// ProjectConfig holds the per-project values
type ProjectConfig struct {
	// RepoURL is the remote repository URL
	// May be empty, in which case no remote is configured
	RepoURL string `mapstructure:"repo_url"`

	// Slug is the project directory name (e.g. "demo")
	Slug string `mapstructure:"slug"`

	// DashName is the slug with dashes (e.g. "demo-proj"), used as the cluster name
	// Default: Slug with underscores replaced by dashes
	DashName string `mapstructure:"dash_name"`

	// WorkDir is the directory the bootstrap runs in
	// Default: current directory
	WorkDir string `mapstructure:"work_dir"`
}

// GitConfig holds version-control settings
type GitConfig struct {
	// TrimRepoURL trims surrounding whitespace from the repository URL before use.
	// Off by default: the URL is used exactly as configured.
	TrimRepoURL bool `mapstructure:"trim_repo_url"`
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error (default: "warn")
	Level string `mapstructure:"level"`
}

// flagKeys maps CLI flag names to configuration keys.
// Only flags present in the given FlagSet are bound.
var flagKeys = map[string]string{
	"repo-url":  "project.repo_url",
	"slug":      "project.slug",
	"dash-name": "project.dash_name",
	"workdir":   "project.work_dir",
	"log-level": "log.level",
}

// Load reads the configuration from a file, environment variables and flags
// It follows this precedence order (highest to lowest):
//  1. CLI flags (when explicitly set)
//  2. Environment variables (KICKOFF_PROJECT_REPO_URL, KICKOFF_GIT_BINARY, ...)
//  3. Configuration file
//  4. Default values
//
// Parameters:
//   - configPath: Path to the configuration file. If empty, will look for
//     "kickoff.toml" in the current directory
//   - flags: Flag set to bind (may be nil)
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		// User specified a config file path explicitly
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("kickoff")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	// Nested keys use underscores in the environment:
	// project.repo_url -> KICKOFF_PROJECT_REPO_URL
	v.SetEnvPrefix("KICKOFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag --%s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No kickoff.toml is fine as long as env vars or flags provide the values
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	applyDerived(&cfg)

	return &cfg, nil
}

// setDefaults sets default values for configuration options
// Every key needs a default so AutomaticEnv can see it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("project.repo_url", "")
	v.SetDefault("project.slug", "")
	v.SetDefault("project.dash_name", "")
	v.SetDefault("project.work_dir", ".")

	v.SetDefault("git.trim_repo_url", false)

	v.SetDefault("log.level", "warn")
}

// applyDerived fills values computed from other values
func applyDerived(cfg *Config) {
	if cfg.Project.DashName == "" {
		cfg.Project.DashName = DashName(cfg.Project.Slug)
	}
	if cfg.Git.TrimRepoURL {
		cfg.Project.RepoURL = strings.TrimSpace(cfg.Project.RepoURL)
	}
}

// DashName converts a project slug to its dash form ("my_app" -> "my-app").
func DashName(slug string) string {
	return strings.ReplaceAll(slug, "_", "-")
}
