package ratelimit

import "github.com/cirisai/ciris-go/internal/collection"

// Registry hands out one limiter per host so that clients talking to several
// agents throttle each independently.
type Registry struct {
	requestsPerMinute int
	limiters          *collection.SyncMap[string, *Limiter]
}

// NewRegistry creates a registry whose limiters admit up to requestsPerMinute
// sustained requests each.
func NewRegistry(requestsPerMinute int) *Registry {
	return &Registry{
		requestsPerMinute: requestsPerMinute,
		limiters:          collection.NewSyncMap[string, *Limiter](),
	}
}

// Limiter returns the limiter for a host, creating it on first use.
func (r *Registry) Limiter(host string) *Limiter {
	return r.limiters.GetOrPut(host, func() *Limiter {
		return New(r.requestsPerMinute)
	})
}
