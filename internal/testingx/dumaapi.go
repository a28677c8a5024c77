package testingx

//
// Code for testing clients of the legislative-data API.
//

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/govapi/govapi/internal/runtimex"
)

// DumaAPIBackend emulates the legislative-data API. It serves the bodies
// registered with [*DumaAPIBackend.SetResponse] for the token it was created
// with, answers 403 for any other token, and 404 for unknown resources.
//
// Construct using [NewDumaAPIBackend].
type DumaAPIBackend struct {
	// mu provides mutual exclusion.
	mu sync.Mutex

	// requests contains the URLs of the requests we received.
	requests []*url.URL

	// responses maps "endpoint.format" to the body to send.
	responses map[string][]byte

	// token is the token we accept.
	token string
}

// NewDumaAPIBackend creates a new [*DumaAPIBackend] accepting the given token.
func NewDumaAPIBackend(token string) *DumaAPIBackend {
	runtimex.Assert(token != "", "NewDumaAPIBackend: empty token")
	return &DumaAPIBackend{
		responses: map[string][]byte{},
		token:     token,
	}
}

// SetResponse registers the body to return for the given resource (e.g., "topics.json").
//
// This method is safe to call concurrently with incoming HTTP requests.
func (b *DumaAPIBackend) SetResponse(resource string, body []byte) {
	defer b.mu.Unlock()
	b.mu.Lock()
	b.responses[resource] = body
}

// Requests returns the URLs of the requests received so far.
func (b *DumaAPIBackend) Requests() []*url.URL {
	defer b.mu.Unlock()
	b.mu.Lock()
	return append([]*url.URL{}, b.requests...)
}

// NewMux constructs an [*http.ServeMux] configured with the correct routing.
func (b *DumaAPIBackend) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{token}/{resource}", b.handleResource)
	return mux
}

func (b *DumaAPIBackend) handleResource(w http.ResponseWriter, r *http.Request) {
	defer b.mu.Unlock()
	b.mu.Lock()

	// save a copy of the URL
	URL := *r.URL
	b.requests = append(b.requests, &URL)

	// make sure the token is the one we expect
	if r.PathValue("token") != b.token {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"code":"403","message":"invalid token"}`))
		return
	}

	// get the registered response
	resource := r.PathValue("resource")
	body, found := b.responses[resource]
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch {
	case strings.HasSuffix(resource, ".json"):
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	case strings.HasSuffix(resource, ".xml"):
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	case strings.HasSuffix(resource, ".rss"):
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	}
	w.Write(body)
}
