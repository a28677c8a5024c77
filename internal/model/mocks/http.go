package mocks

import "net/http"

// HTTPClient allows mocking an HTTP client.
type HTTPClient struct {
	MockDo func(req *http.Request) (*http.Response, error)
}

// Do calls MockDo.
func (clnt *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return clnt.MockDo(req)
}
