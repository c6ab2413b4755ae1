// Package main is the entry point for the kickoff CLI application.
//
// The main package is kept minimal. All the actual logic lives in other packages
// (especially internal/commands).
package main

import (
	"os"

	"github.com/wlame/kickoff/internal/commands"
)

// main runs the root command and exits with its status
func main() {
	err := commands.Execute()

	// A failing external command has already reported on stderr;
	// only our own errors need printing
	if err != nil && !commands.IsCommandFailure(err) {
		commands.PrintError(err)
	}

	// The exit code of the failing command is propagated to the caller,
	// so the template engine sees exactly what git, kind or make returned
	os.Exit(commands.ExitCode(err))
}
