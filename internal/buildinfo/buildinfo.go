// Package buildinfo holds version metadata stamped in at link time via
// -ldflags, the way the teacher's own internal/vars does for tv4p-road-tool.
package buildinfo

import "fmt"

var (
	// Version is the release tag, overridden at build time.
	Version = "dev"
	// Commit is the VCS commit hash, overridden at build time.
	Commit = "unknown"
	// BuiltAt is the build timestamp, overridden at build time.
	BuiltAt = "unknown"
)

// Print writes the version banner to stdout.
func Print() {
	fmt.Printf("rtron %s (commit %s, built %s)\n", Version, Commit, BuiltAt)
}
