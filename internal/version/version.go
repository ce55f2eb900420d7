// Package version holds build-time metadata for the verbump CLI.
package version

// version is set at build time via -ldflags, defaulting to "dev".
var version = "dev"

// GetVersion returns the CLI version string.
func GetVersion() string {
	return version
}
