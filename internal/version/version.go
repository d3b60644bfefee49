// Package version holds the application version string.
package version

// Version is the current gantterm version. Overridden at build time via
// -ldflags "-X gantterm/internal/version.Version=...".
var Version = "0.1.0"
