package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wlame/kickoff/internal/devenv"
	"github.com/wlame/kickoff/internal/exec"
	"github.com/wlame/kickoff/internal/git"
	"github.com/wlame/kickoff/internal/ui"
)

// ToolCheck is the result of looking up one external tool.
type ToolCheck struct {
	Role string // what the tool is used for
	Name string // binary looked up on PATH
	Path string // resolved path, empty when missing
	Hint string // where to get it
}

// doctorCmd checks that every tool the bootstrap shells out to is installed
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that git, kind and make are installed",
	Long: `Resolve every external tool the bootstrap needs on PATH.

Nothing is executed; this only reports which binaries would be used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Doctor(exec.LookPath, ui.NewPrinter(cmd.OutOrStdout()))
	},
}

// Doctor resolves the bootstrap's tools with lookPath and prints one line each.
// It returns an error naming the missing tools, if any.
func Doctor(lookPath func(string) (string, error), out *ui.Printer) error {
	checks := []ToolCheck{
		{Role: "version control", Name: git.Binary, Hint: "https://git-scm.com/downloads"},
		{Role: "cluster", Name: devenv.KindBinary, Hint: "https://kind.sigs.k8s.io/docs/user/quick-start/#installation"},
		{Role: "build", Name: devenv.MakeBinary, Hint: "install make with your system package manager"},
	}

	var missing []string
	for i := range checks {
		c := &checks[i]
		path, err := lookPath(c.Name)
		if err != nil {
			out.Warning("%s: %s not found on PATH", c.Role, c.Name)
			out.Hint("  %s", c.Hint)
			missing = append(missing, c.Name)
			continue
		}
		c.Path = path
		out.Success("%s: %s (%s)", c.Role, c.Name, c.Path)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%d required tool(s) missing: %v", len(missing), missing)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
