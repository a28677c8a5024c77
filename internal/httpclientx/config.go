package httpclientx

import "github.com/govapi/govapi/internal/model"

// Config contains configuration for [GetRaw].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Client is the MANDATORY [model.HTTPClient] to use.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// Secrets contains OPTIONAL strings that must never appear in logs. We
	// replace them with [ScrubbedPlaceholder] before logging a URL.
	Secrets []string

	// UserAgent is the OPTIONAL User-Agent header value to use. When
	// empty, we use the default User-Agent of the underlying transport.
	UserAgent string
}
