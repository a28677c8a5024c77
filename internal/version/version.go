// Package version contains the govapi version.
package version

import "runtime"

// Version is the software version. We override it at build time using
// -ldflags "-X github.com/govapi/govapi/internal/version.Version=...".
var Version = "0.1.0-dev"

// UserAgent returns the User-Agent the command line tool sends.
func UserAgent() string {
	return "govapi/" + Version
}

// Info returns a human readable description of the build.
func Info() string {
	return Version + " (" + runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
