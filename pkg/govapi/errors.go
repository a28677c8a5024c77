package govapi

import (
	"fmt"

	"github.com/govapi/govapi/internal/httpclientx"
	"github.com/pkg/errors"
)

// ErrNoFormat indicates that a call provided no format and the
// client has no default format either.
var ErrNoFormat = errors.New("govapi: response format must be provided")

// ErrNoToken indicates that the [Config] lacks the MANDATORY token.
var ErrNoToken = errors.New("govapi: token must be provided")

// ErrJSONOnly indicates an attempt to construct a [*JSONClient] using
// a default format other than [FormatJSON].
var ErrJSONOnly = errors.New("govapi: the JSON client only supports the json format")

// ErrInvalidFormat indicates that a format is not supported.
type ErrInvalidFormat struct {
	// Format is the offending format.
	Format ResponseFormat
}

// Error implements error.
func (err *ErrInvalidFormat) Error() string {
	return fmt.Sprintf("govapi: invalid format: %q", string(err.Format))
}

// ErrDecode indicates that we could not parse a response body as JSON.
type ErrDecode struct {
	// Endpoint is the endpoint we were calling.
	Endpoint string

	// Err is the underlying parser error.
	Err error
}

// Error implements error.
func (err *ErrDecode) Error() string {
	return fmt.Sprintf("govapi: %s: cannot decode JSON response: %s", err.Endpoint, err.Err.Error())
}

// Unwrap returns the underlying parser error.
func (err *ErrDecode) Unwrap() error {
	return err.Err
}

// ErrRequestFailed indicates that the server returned a non-2xx status
// code. Use errors.As to obtain the status code and the body.
type ErrRequestFailed = httpclientx.ErrRequestFailed
