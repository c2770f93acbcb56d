// Package version carries the build identity the server logs on startup.
// The values are placeholders overridden at build time:
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.3 ..."
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
