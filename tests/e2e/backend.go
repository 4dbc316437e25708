//go:build e2e

package e2e

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// BackendStub plays the Brrow backend: listing lookups, offer creation and
// the image upload endpoint. Each route answers with a canned response that
// tests can override.
type BackendStub struct {
	srv *httptest.Server

	mu        sync.Mutex
	routes    map[string]http.HandlerFunc
	requests  map[string]int
	lastToken string
}

func NewBackendStub(t *testing.T) *BackendStub {
	b := &BackendStub{}
	b.Reset()
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *BackendStub) URL() string {
	return b.srv.URL
}

// Reset restores the default happy-path responses and clears counters.
func (b *BackendStub) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes = map[string]http.HandlerFunc{
		"GET /api/listings/": Respond(http.StatusOK,
			`{"success":true,"data":{"id":"listing-42","title":"Camping tent","price":100,"isActive":true,"availabilityStatus":"AVAILABLE"}}`),
		"POST /api/offers": Respond(http.StatusCreated,
			`{"success":true,"data":{"id":101,"clientSecret":"pi_123_secret_456","customerId":"cus_789","customerSessionClientSecret":"cuss_secret_abc"}}`),
		"POST /api/upload": Respond(http.StatusOK,
			`{"success":true,"data":{"url":"https://cdn.example.com/listing/tent.jpg","public_id":"listing/tent"}}`),
	}
	b.requests = map[string]int{}
	b.lastToken = ""
}

// Handle overrides the route, keyed like "POST /api/offers". Listing
// lookups are keyed by prefix: "GET /api/listings/".
func (b *BackendStub) Handle(route string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[route] = h
}

func (b *BackendStub) Requests(route string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[route]
}

// LastToken is the bearer token forwarded on the most recent request.
func (b *BackendStub) LastToken() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastToken
}

func (b *BackendStub) serve(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)

	route := r.Method + " " + r.URL.Path
	if strings.HasPrefix(r.URL.Path, "/api/listings/") {
		route = r.Method + " /api/listings/"
	}

	b.mu.Lock()
	h, ok := b.routes[route]
	b.requests[route]++
	b.lastToken = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	b.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// Respond builds a canned JSON handler for Handle.
func Respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}
