package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wlame/kickoff/internal/config"
	"github.com/wlame/kickoff/internal/git"
	"github.com/wlame/kickoff/internal/ui"
)

// configCmd represents the config command and its subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Display and validate configuration settings.`,
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long:  `Load and display the resolved configuration from file, environment variables and defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, nil)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := ui.NewPrinter(cmd.OutOrStdout())
		out.Info("Configuration loaded successfully")

		// Pretty print as JSON for readability
		jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format config: %w", err)
		}

		out.Plain("%s", jsonBytes)
		return nil
	},
}

// configValidateCmd validates the configuration
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long:  `Load and validate the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, nil)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration is invalid: %w", err)
		}

		out := ui.NewPrinter(cmd.OutOrStdout())
		out.Success("Configuration is valid")
		out.Info("Project: %s (cluster %s)", cfg.Project.Slug, cfg.Project.DashName)
		if cfg.Project.RepoURL == "" {
			out.Warning("No repo_url provided. The remote will not be configured.")
		} else {
			out.Info("Remote: %s=%s", git.RemoteName, cfg.Project.RepoURL)
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	rootCmd.AddCommand(configCmd)
}
