package govapi

//
// Request builder and dispatcher
//

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/govapi/govapi/internal/httpclientx"
	"github.com/govapi/govapi/internal/model"
	"github.com/pkg/errors"
)

// DefaultServiceRoot is the root of the legislative-data API.
const DefaultServiceRoot = "http://api.duma.gov.ru/api/"

// Logger is the logger used by the clients. The `log.Log` logger
// of `github.com/apex/log` implements this interface.
type Logger = model.Logger

// HTTPClient is the HTTP client used by the clients. The stdlib's
// [*http.Client] implements this interface.
type HTTPClient = model.HTTPClient

// Config contains the client configuration.
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Token is the MANDATORY token identifying the caller. We embed
	// it into the URL path of each request.
	Token string

	// AppToken is the OPTIONAL token identifying the application. When
	// set, we send it as the app_token query parameter of each request.
	AppToken string

	// Format is the OPTIONAL default response format. When empty, each
	// call to [*Client.Request] must provide a format.
	Format ResponseFormat

	// ServiceRoot is the OPTIONAL service root. When empty we
	// use [DefaultServiceRoot].
	ServiceRoot string

	// HTTPClient is the OPTIONAL HTTP client. When nil we
	// use [http.DefaultClient].
	HTTPClient HTTPClient

	// Logger is the OPTIONAL logger. When nil we do not log.
	Logger Logger

	// UserAgent is the OPTIONAL User-Agent. When empty we use the
	// default User-Agent of the HTTP client's transport.
	UserAgent string
}

// Client is a client for the legislative-data API returning raw
// response bodies. Construct using [NewClient].
//
// A client is immutable and therefore safe for concurrent use.
type Client struct {
	// Endpoints contains the endpoint convenience methods, which
	// use the client's default format.
	Endpoints[[]byte]

	appToken   string
	basePath   string
	baseRaw    string
	baseURL    url.URL
	format     ResponseFormat
	httpConfig *httpclientx.Config
}

// NewClient creates a new [*Client] from the given [Config].
//
// This function fails if the token is missing, the default format is
// not supported, or the service root is not an absolute URL.
func NewClient(config Config) (*Client, error) {
	if config.Token == "" {
		return nil, ErrNoToken
	}

	var format ResponseFormat
	if config.Format != "" {
		f, err := ValidateFormat(config.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}

	root := config.ServiceRoot
	if root == "" {
		root = DefaultServiceRoot
	}
	baseURL, err := url.Parse(root)
	if err != nil {
		return nil, errors.Wrap(err, "govapi: invalid service root")
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("govapi: service root is not an absolute URL: %q", root)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		appToken: config.AppToken,
		basePath: joinURLPath(baseURL.Path, config.Token) + "/",
		baseRaw:  joinURLPath(baseURL.EscapedPath(), url.PathEscape(config.Token)) + "/",
		baseURL:  *baseURL,
		format:   format,
		httpConfig: &httpclientx.Config{
			Client:    httpClient,
			Logger:    model.ValidLoggerOrDefault(config.Logger),
			Secrets:   []string{config.Token, config.AppToken},
			UserAgent: config.UserAgent,
		},
	}
	c.Endpoints = Endpoints[[]byte]{
		request: func(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
			return c.Request(ctx, endpoint, "", params)
		},
	}
	return c, nil
}

// joinURLPath appends resourcePath to urlPath.
func joinURLPath(urlPath, resourcePath string) string {
	if !strings.HasSuffix(urlPath, "/") {
		urlPath += "/"
	}
	return urlPath + strings.TrimPrefix(resourcePath, "/")
}

// Format returns the default format, which may be empty.
func (c *Client) Format() ResponseFormat {
	return c.format
}

// resolveFormat implements the format precedence: the explicit
// format wins, then the default format, then we fail.
func (c *Client) resolveFormat(format ResponseFormat) (ResponseFormat, error) {
	switch {
	case format != "":
		return ValidateFormat(format)
	case c.format != "":
		return c.format, nil
	default:
		return "", ErrNoFormat
	}
}

// URL returns the URL that [*Client.Request] would fetch for the given
// arguments. The app token, when configured, replaces any app_token
// contained in params. We do not modify params.
//
// Unlike the query string of older clients, the returned URL contains
// no trailing "?" when there are no query parameters.
func (c *Client) URL(endpoint string, format ResponseFormat, params url.Values) (string, error) {
	format, err := c.resolveFormat(format)
	if err != nil {
		return "", err
	}

	URL := c.baseURL // copy
	resource := endpoint + "." + string(format)
	URL.Path = c.basePath + resource
	URL.RawPath = c.baseRaw + url.PathEscape(resource)

	query := url.Values{}
	for key, values := range params {
		query[key] = append([]string{}, values...)
	}
	if c.appToken != "" {
		query.Set("app_token", c.appToken)
	}
	URL.RawQuery = query.Encode()
	return URL.String(), nil
}

// Request sends a GET request for the given endpoint (e.g., "topics") and
// returns the raw response body. When format is empty we use the default
// format. This method fails without performing any I/O when there is no
// format or the format is not supported.
//
// A non-2xx status code causes an error wrapping [*httpclientx.ErrRequestFailed].
// This method neither retries nor imposes a timeout: use ctx for that.
func (c *Client) Request(ctx context.Context, endpoint string, format ResponseFormat, params url.Values) ([]byte, error) {
	URL, err := c.URL(endpoint, format, params)
	if err != nil {
		return nil, err
	}
	rawrespbody, err := httpclientx.GetRaw(ctx, c.httpConfig, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "govapi: %s", endpoint)
	}
	return rawrespbody, nil
}
