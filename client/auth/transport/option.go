package transport

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/cirisai/ciris-go/client/auth/store"
)

type Option func(*RoundTripper)

// WithStore sets the credential store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithTransport sets the underlying round tripper
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}

// WithBaseURL pins the store key for all requests instead of deriving it
// from each request URL.
func WithBaseURL(baseURL string) Option {
	return func(t *RoundTripper) {
		t.baseURL = baseURL
	}
}
