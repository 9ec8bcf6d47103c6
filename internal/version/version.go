// Package version holds build metadata injected with ldflags:
//
//	go build -ldflags "-X git.home.luguber.info/inful/rexdocs/internal/version.Version=v0.3.0"
package version

import "fmt"

// Version is the release tag of the binary.
var Version = "dev"

var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the metadata for --version.
func String() string {
	if GitCommit == "unknown" {
		return fmt.Sprintf("rexdocs %s", Version)
	}
	return fmt.Sprintf("rexdocs %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
