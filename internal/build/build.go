// Package build holds version information injected at build time.
package build

// These variables are set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
