// Package version holds build metadata injected via ldflags.
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns the version, commit, and build date.
func Info() (string, string, string) {
	return Version, GitCommit, BuildDate
}
