package model

//
// Common HTTP definitions.
//

import "net/http"

// HTTPClient is the interface of a generic HTTP client. The stdlib's
// [*http.Client] implements this interface and [http.DefaultClient] is
// what we use when the caller does not provide a client.
type HTTPClient interface {
	// Do should work like [*http.Client.Do].
	Do(req *http.Request) (*http.Response, error)
}

var _ HTTPClient = http.DefaultClient

