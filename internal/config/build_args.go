package config

import "fmt"

// Build arguments, overridden via ldflags at release build time.
var (
	// ModuleName is the name of the service binary.
	ModuleName = "go-keyring"
	// Commit is the git commit hash the binary was built from.
	Commit = "local"
	// BuildDate is the RFC3339 timestamp of the build.
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns "<ModuleName> @ <Commit> (<BuildDate>)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
