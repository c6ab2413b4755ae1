package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// validLogLevels are the levels accepted by log.level
var validLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Validate checks if the configuration is valid
// It returns an error if any required fields are missing or invalid
// This should be called after loading the configuration
//
// The repository URL is not checked here: an empty URL is a normal skip and
// a malformed one fails the remote step, after the repository exists.
func (c *Config) Validate() error {
	if err := c.Project.Validate(); err != nil {
		return fmt.Errorf("project config: %w", err)
	}
	if !contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("log config: invalid level: %s (must be one of: %s)",
			c.Log.Level, strings.Join(validLogLevels, ", "))
	}
	return nil
}

// Validate checks if the project configuration is valid
//
// Slug and dash name end up in a printed "cd" hint and as a kind cluster
// name. Empty or whitespace values are rejected up front so the run does not
// create a repository only to fail at the cluster step.
func (p *ProjectConfig) Validate() error {
	if p.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	if strings.ContainsAny(p.Slug, " \t\n/") {
		return fmt.Errorf("invalid slug: %q (must not contain whitespace or slashes)", p.Slug)
	}
	if p.DashName == "" {
		return fmt.Errorf("dash_name is required")
	}
	if strings.ContainsAny(p.DashName, " \t\n/") {
		return fmt.Errorf("invalid dash_name: %q (must not contain whitespace or slashes)", p.DashName)
	}
	if p.WorkDir == "" {
		return fmt.Errorf("work_dir is required")
	}
	return nil
}

// LogLevel returns the parsed log level.
// Validate guarantees the string is one logrus understands.
func (c *Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

// contains checks if a slice contains a specific string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
