package tui

import "fmt"

// Build metadata, overwritten at build time using -ldflags.
var (
	AppVersion = "0.3.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}

// VersionLabel exposes the formatted build version to other packages.
func VersionLabel() string { return versionLabel() }
