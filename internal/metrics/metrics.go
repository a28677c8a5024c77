// Package metrics instruments the HTTP client used to talk to the
// legislative-data API with Prometheus metrics.
package metrics

import (
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/govapi/govapi/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// summaryObjectives returns the summary objectives for promauto.NewSummary.
func summaryObjectives() map[float64]float64 {
	return map[float64]float64{
		0.5:  0.010,
		0.9:  0.010,
		0.99: 0.001,
	}
}

// Metrics contains the metrics of the govapi HTTP client. We use a
// private registry rather than the default one, such that each command
// invocation (and each test) only sees its own requests.
type Metrics struct {
	// Registry is the registry containing the metrics.
	Registry *prometheus.Registry

	// requestsCount counts the requests by endpoint and status code.
	requestsCount *prometheus.CounterVec

	// requestsInflight gauges the number of requests currently inflight.
	requestsInflight prometheus.Gauge

	// requestDurationSeconds summarizes the time to receive the response headers.
	requestDurationSeconds prometheus.Summary
}

// New creates a new [*Metrics] instance.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		requestsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "govapi_requests_count",
			Help: "Total number of requests sent to the legislative-data API",
		}, []string{"endpoint", "code"}),
		requestsInflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "govapi_requests_inflight_gauge",
			Help: "The number of requests currently inflight",
		}),
		requestDurationSeconds: factory.NewSummary(prometheus.SummaryOpts{
			Name:       "govapi_request_duration_seconds",
			Help:       "Summarizes the time to receive the response headers (in seconds)",
			Objectives: summaryObjectives(),
		}),
	}
}

// WrapHTTPClient returns a [model.HTTPClient] updating the metrics.
func (m *Metrics) WrapHTTPClient(client model.HTTPClient) model.HTTPClient {
	return &httpClient{client: client, metrics: m}
}

// WriteToTextfile writes the metrics to the given file using the format
// expected by the textfile collector of the node exporter.
func (m *Metrics) WriteToTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.Registry)
}

// httpClient is the [model.HTTPClient] returned by WrapHTTPClient.
type httpClient struct {
	client  model.HTTPClient
	metrics *Metrics
}

var _ model.HTTPClient = &httpClient{}

// Do implements model.HTTPClient.
func (c *httpClient) Do(req *http.Request) (*http.Response, error) {
	c.metrics.requestsInflight.Inc()
	defer c.metrics.requestsInflight.Dec()

	t0 := time.Now()
	resp, err := c.client.Do(req)
	c.metrics.requestDurationSeconds.Observe(time.Since(t0).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	c.metrics.requestsCount.WithLabelValues(endpointName(req), code).Inc()
	return resp, err
}

// endpointName returns the endpoint name (e.g., "topics") given a
// request for <root>/<token>/<endpoint>.<format>. Using the name rather
// than the path keeps the token out of the labels.
func endpointName(req *http.Request) string {
	name, _, _ := strings.Cut(path.Base(req.URL.Path), ".")
	return name
}
