// Package version contains the version subcommand.
package version

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/govapi/govapi/internal/cli/root"
	"github.com/govapi/govapi/internal/version"
)

func init() {
	cmd := root.Command("version", "Show version.")
	cmd.Action(func(_ *kingpin.ParseContext) error {
		fmt.Println(version.Version)
		return nil
	})
}
