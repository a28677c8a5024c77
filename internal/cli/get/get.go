// Package get contains the get subcommand.
package get

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apex/log"
	"github.com/govapi/govapi/internal/cli/root"
	"github.com/govapi/govapi/internal/metrics"
	"github.com/govapi/govapi/internal/model"
	"github.com/govapi/govapi/internal/must"
	"github.com/govapi/govapi/internal/version"
	"github.com/govapi/govapi/pkg/govapi"
)

// options contains the get command line options.
type options struct {
	Endpoint        string
	Params          map[string]string
	Format          string
	MetricsTextfile string
}

func init() {
	cmd := root.Command("get", "Fetch an endpoint and print the response body.")

	opts := &options{}
	cmd.Arg("endpoint", "Endpoint to fetch (see the endpoints command).").Required().StringVar(&opts.Endpoint)
	cmd.Flag("param", "Add a key=value query parameter.").Short('p').StringMapVar(&opts.Params)
	cmd.Flag("format", "Response format; overrides the configured one.").Short('f').
		HintOptions(string(govapi.FormatJSON), string(govapi.FormatXML), string(govapi.FormatRSS)).
		StringVar(&opts.Format)
	cmd.Flag("metrics-textfile", "Write Prometheus metrics to the given file.").StringVar(&opts.MetricsTextfile)

	cmd.Action(func(_ *kingpin.ParseContext) error {
		sess, err := root.Init()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return run(ctx, sess.ClientConfig(), log.Log, opts, os.Stdout)
	})
}

// run fetches the endpoint using the given config and writes the body to w.
func run(ctx context.Context, config govapi.Config, logger model.Logger, opts *options, w io.Writer) error {
	if _, found := govapi.LookupEndpoint(opts.Endpoint); !found {
		logger.Warnf("%s is not a documented endpoint", opts.Endpoint)
	}

	m := metrics.New()
	txp := config.HTTPClient
	if txp == nil {
		txp = http.DefaultClient
	}
	config.HTTPClient = m.WrapHTTPClient(txp)
	config.Logger = logger
	config.UserAgent = version.UserAgent()

	clnt, err := govapi.NewClient(config)
	if err != nil {
		return err
	}

	params := url.Values{}
	for key, value := range opts.Params {
		params.Set(key, value)
	}
	format := govapi.ResponseFormat(opts.Format)
	body, err := clnt.Request(ctx, opts.Endpoint, format, params)

	if opts.MetricsTextfile != "" {
		if err := m.WriteToTextfile(opts.MetricsTextfile); err != nil {
			logger.Warnf("cannot write metrics: %s", err.Error())
		}
	}
	if err != nil {
		return err
	}

	if format == "" {
		format = clnt.Format()
	}
	if format == govapi.FormatJSON {
		body = maybeIndentJSON(logger, body)
	}
	must.Fprintf(w, "%s\n", bytes.TrimRight(body, "\n"))
	return nil
}

// maybeIndentJSON indents a JSON body or returns it unchanged when
// the body is not valid JSON.
func maybeIndentJSON(logger model.Logger, body []byte) []byte {
	out := &bytes.Buffer{}
	if err := json.Indent(out, body, "", "  "); err != nil {
		logger.Warnf("the response body is not valid JSON: %s", err.Error())
		return body
	}
	return out.Bytes()
}
