package client

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/cirisai/ciris-go/client/auth/store"
	"github.com/cirisai/ciris-go/client/ratelimit"
)

// Option represents a client option
type Option func(c *Client)

// WithStore sets the credential store
func WithStore(aStore store.Store) Option {
	return func(c *Client) {
		c.store = aStore
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a fully custom HTTP client; when used the caller owns
// credential injection.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit caps sustained request throughput per host.
func WithRateLimit(requestsPerMinute int) Option {
	return func(c *Client) {
		c.limiters = ratelimit.NewRegistry(requestsPerMinute)
	}
}

// WithRateLimitRegistry shares a limiter registry across clients talking to
// the same hosts.
func WithRateLimitRegistry(registry *ratelimit.Registry) Option {
	return func(c *Client) {
		c.limiters = registry
	}
}
