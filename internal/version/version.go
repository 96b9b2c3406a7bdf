// Package version exposes build-time version metadata, injected via
// -ldflags at release time.
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Info holds the version metadata for this binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// GetInfo returns the version information for this build.
func GetInfo() Info {
	return Info{Version: Version, Commit: Commit, BuildDate: BuildDate}
}

func (i Info) String() string {
	return fmt.Sprintf("promptgen %s (commit %s, built %s)", i.Version, i.Commit, i.BuildDate)
}
