// Package version holds build-time metadata injected via ldflags.
package version

// Set at build time:
//
//	-X 'github.com/janekbaraniewski/ecomdash/internal/version.Version=...'
//	-X 'github.com/janekbaraniewski/ecomdash/internal/version.CommitHash=...'
//	-X 'github.com/janekbaraniewski/ecomdash/internal/version.BuildDate=...'
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Version + " (" + CommitHash + ") built " + BuildDate
}
