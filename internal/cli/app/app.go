// Package app contains the entry point of the govapi command.
package app

import (
	"os"

	"github.com/govapi/govapi/internal/cli/root"
	"github.com/govapi/govapi/internal/version"
)

// Run the app. This is the main app entry point
func Run() error {
	root.Cmd.Version(version.Info())
	_, err := root.Cmd.Parse(os.Args[1:])
	return err
}
