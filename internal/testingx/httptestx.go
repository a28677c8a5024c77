package testingx

import (
	"net/http"
	"net/http/httptest"
)

// MustNewHTTPServer creates a new [*httptest.Server] using the given handler. The
// caller is responsible for calling Close when done with the server.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	return httptest.NewServer(handler)
}

// MustNewClosedHTTPServerURL returns the URL of an HTTP server that we have
// already closed, such that connecting to it fails.
func MustNewClosedHTTPServerURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	URL := srv.URL
	srv.Close()
	return URL
}

// HTTPHandlerStatus returns an [http.Handler] that replies with the given
// status code and body to every request.
func HTTPHandlerStatus(code int, body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		w.Write(body)
	})
}
