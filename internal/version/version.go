// Package version carries the build identification of the command line
// tools, set at build time with -ldflags "-X ...".
package version

import "fmt"

var (
	// Version is the release version of the tools.
	Version = "dev"
	// GitSHA is the git commit the build was made from.
	GitSHA = "unknown"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// String formats the build identification for a -version flag.
func String() string {
	return fmt.Sprintf("fsarcamp %s (commit %s, built %s)", Version, GitSHA, BuildTime)
}
