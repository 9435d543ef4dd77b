// Package buildinfo holds version information set at link time with
// -ldflags "-X github.com/ech-workers/ech-client/internal/buildinfo.Version=...".
package buildinfo

var (
	Version    = "0.1.0-dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
