package govapi

//
// JSON client
//

import (
	"context"
	"encoding/json"
	"net/url"
)

// JSONClient is a client for the legislative-data API that always requests
// JSON and decodes the response body. Construct using [NewJSONClient].
//
// A client is immutable and therefore safe for concurrent use.
type JSONClient struct {
	// Endpoints contains the endpoint convenience methods. The decoded
	// value is a tree of map[string]any, []any, string, float64, bool, and nil.
	Endpoints[any]

	// client is the underlying raw client.
	client *Client
}

// NewJSONClient creates a new [*JSONClient]. The config Format must be either
// empty or [FormatJSON], otherwise this function fails with [ErrJSONOnly].
func NewJSONClient(config Config) (*JSONClient, error) {
	if config.Format != "" && config.Format != FormatJSON {
		return nil, ErrJSONOnly
	}
	config.Format = FormatJSON
	client, err := NewClient(config)
	if err != nil {
		return nil, err
	}
	c := &JSONClient{client: client}
	c.Endpoints = Endpoints[any]{request: c.Request}
	return c, nil
}

// Client returns the underlying [*Client].
func (c *JSONClient) Client() *Client {
	return c.client
}

// Request is like [*Client.Request] except that it always requests JSON and
// returns the decoded body. A body that is not valid JSON causes an [*ErrDecode]
// error wrapping the parser's own error.
func (c *JSONClient) Request(ctx context.Context, endpoint string, params url.Values) (any, error) {
	return FetchJSON[any](ctx, c, endpoint, params)
}

// FetchJSON is like [*JSONClient.Request] but decodes the body into Output.
func FetchJSON[Output any](ctx context.Context, c *JSONClient, endpoint string, params url.Values) (Output, error) {
	rawrespbody, err := c.client.Request(ctx, endpoint, FormatJSON, params)
	if err != nil {
		return *new(Output), err
	}
	var output Output
	if err := json.Unmarshal(rawrespbody, &output); err != nil {
		return *new(Output), &ErrDecode{Endpoint: endpoint, Err: err}
	}
	return output, nil
}
