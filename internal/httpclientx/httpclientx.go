// Package httpclientx contains the HTTP plumbing used by the API client. The
// code in here performs a single round trip per call: it neither retries nor
// caches, and it leaves timeouts to the caller's context.
package httpclientx

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrRequestFailed indicates that the server returned a non-2xx status code.
type ErrRequestFailed struct {
	// Body contains the response body, which sometimes explains the failure.
	Body []byte

	// StatusCode is the status code that failed.
	StatusCode int
}

var _ error = &ErrRequestFailed{}

// Error returns the error as a string.
func (err *ErrRequestFailed) Error() string {
	return fmt.Sprintf("httpclientx: request failed: %d %s", err.StatusCode, http.StatusText(err.StatusCode))
}

// ScrubbedPlaceholder replaces the [Config] secrets inside log messages.
const ScrubbedPlaceholder = "[scrubbed]"

// scrub removes the configured secrets from the given string. URLs carry
// secrets escaped for the path or for the query, so we also remove the
// escaped forms of each secret.
func scrub(config *Config, value string) string {
	for _, secret := range config.Secrets {
		if secret == "" {
			continue
		}
		for _, form := range []string{secret, url.PathEscape(secret), url.QueryEscape(secret)} {
			value = strings.ReplaceAll(value, form, ScrubbedPlaceholder)
		}
	}
	return value
}

// do sends the HTTP request and returns the whole response body.
func do(req *http.Request, config *Config) ([]byte, error) {
	// possibly override the User-Agent
	if config.UserAgent != "" {
		req.Header.Set("User-Agent", config.UserAgent)
	}

	URL := scrub(config, req.URL.String())
	config.Logger.Debugf("%s %s...", req.Method, URL)

	// get the response
	resp, err := config.Client.Do(req)

	// handle the case of failure
	if err != nil {
		config.Logger.Debugf("%s %s... %s", req.Method, URL, scrub(config, err.Error()))
		return nil, err
	}

	// make sure we close the response body
	defer resp.Body.Close()

	// read the whole body
	rawrespbody, err := io.ReadAll(resp.Body)

	// handle the case of failure
	if err != nil {
		config.Logger.Debugf("%s %s... %s", req.Method, URL, err.Error())
		return nil, err
	}

	config.Logger.Debugf("%s %s... %d (%d bytes)", req.Method, URL, resp.StatusCode, len(rawrespbody))

	// handle the case of HTTP error
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrRequestFailed{Body: rawrespbody, StatusCode: resp.StatusCode}
	}

	// make sure we never return a nil body on success
	if rawrespbody == nil {
		rawrespbody = []byte{}
	}

	return rawrespbody, nil
}
