// Package version reports which kickoff build is running.
//
// The template pins a kickoff release; when a bootstrap misbehaves, the first
// question is which build the hook actually ran. "kickoff version" answers it.
package version

import "fmt"

// Build metadata, stamped by the release build:
//
//	go build -ldflags "-X github.com/wlame/kickoff/pkg/version.Version=1.0.0 \
//	  -X github.com/wlame/kickoff/pkg/version.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/wlame/kickoff/pkg/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// A plain "go build" or "go run" leaves the placeholders below.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info is the build metadata of the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// Get returns the build metadata of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	}
}

// String is the one-line banner printed by "kickoff version"
func String() string {
	return fmt.Sprintf("kickoff version %s (commit: %s, built: %s)",
		Version, Commit, BuildTime)
}

// Short returns only the version, as attached to the bootstrap's debug log
func Short() string {
	return Version
}

