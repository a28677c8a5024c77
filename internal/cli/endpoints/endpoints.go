// Package endpoints contains the endpoints subcommand.
package endpoints

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/govapi/govapi/internal/cli/root"
	"github.com/govapi/govapi/internal/must"
	"github.com/govapi/govapi/pkg/govapi"
	"github.com/pkg/errors"
)

func init() {
	cmd := root.Command("endpoints", "Describe the available endpoints and their parameters.")
	name := cmd.Arg("name", "Only describe the given endpoint.").String()
	asJSON := cmd.Flag("json", "Emit JSON rather than human readable text.").Bool()

	cmd.Action(func(_ *kingpin.ParseContext) error {
		infos, err := selectEndpoints(*name)
		if err != nil {
			return err
		}
		if *asJSON {
			writeJSON(os.Stdout, infos)
			return nil
		}
		logEndpoints(log.Log, infos)
		return nil
	})
}

// selectEndpoints returns the whole catalog or a single endpoint.
func selectEndpoints(name string) ([]govapi.EndpointInfo, error) {
	if name == "" {
		return govapi.Catalog(), nil
	}
	info, found := govapi.LookupEndpoint(name)
	if !found {
		return nil, errors.Errorf("no such endpoint: %q", name)
	}
	return []govapi.EndpointInfo{info}, nil
}

// writeJSON emits the endpoints as indented JSON.
func writeJSON(w io.Writer, infos []govapi.EndpointInfo) {
	must.Fprintf(w, "%s\n", must.MarshalAndIndentJSON(infos, "", "  "))
}

// logEndpoints emits the endpoints using "endpoint_item" typed logs.
func logEndpoints(logger log.Interface, infos []govapi.EndpointInfo) {
	logger.WithFields(log.Fields{
		"type":  "section_title",
		"title": "Endpoints",
	}).Info("")
	for _, info := range infos {
		var params []string
		for _, param := range info.Params {
			params = append(params, param.Name+": "+param.Description)
		}
		logger.WithFields(log.Fields{
			"type":     "endpoint_item",
			"name":     info.Name,
			"summary":  info.Summary,
			"docs_url": info.DocsURL,
			"params":   params,
		}).Info("")
	}
}
