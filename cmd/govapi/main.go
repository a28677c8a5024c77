// Command govapi is a command line client for the legislative-data
// API of the State Duma (http://api.duma.gov.ru/).
package main

import (
	"github.com/apex/log"
	"github.com/govapi/govapi/internal/cli/app"
	_ "github.com/govapi/govapi/internal/cli/configure"
	_ "github.com/govapi/govapi/internal/cli/endpoints"
	_ "github.com/govapi/govapi/internal/cli/get"
	_ "github.com/govapi/govapi/internal/cli/version"
)

func main() {
	if err := app.Run(); err != nil {
		log.WithError(err).Fatal("govapi failed")
	}
}
