// Package version carries build metadata, set at link time with
//
//	go build -ldflags "-X github.com/banshee-data/lightgg/internal/version.Version=v1.0.0"
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String formats the build metadata for -version output.
func String() string {
	return fmt.Sprintf("lightgg %s (commit %s, built %s)", Version, GitSHA, BuildTime)
}
