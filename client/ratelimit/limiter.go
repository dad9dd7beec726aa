package ratelimit

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cirisai/ciris-go/schema"
)

// Limiter is an adaptive token bucket. It starts from a configured request
// rate, tightens when the server pushes back with 429 or advertises low
// remaining quota, and gradually recovers toward the configured rate after
// sustained success.
type Limiter struct {
	mu sync.Mutex
	// configured ceiling in requests per second
	maxRate float64
	rate    float64
	tokens  float64
	burst   float64
	last    time.Time
	now     func() time.Time
}

const (
	// recoveryFactor grows the rate after each successful call.
	recoveryFactor = 1.05
	// backoffFactor shrinks the rate after a 429.
	backoffFactor = 0.5
	minRate       = 0.1
)

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the wall clock; tests use it.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// WithBurst sets the bucket capacity in requests.
func WithBurst(burst int) Option {
	return func(l *Limiter) {
		l.burst = float64(burst)
	}
}

// New creates a limiter admitting up to requestsPerMinute sustained requests.
func New(requestsPerMinute int, options ...Option) *Limiter {
	rate := float64(requestsPerMinute) / 60
	ret := &Limiter{
		maxRate: rate,
		rate:    rate,
		burst:   1,
		now:     time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.tokens = ret.burst
	ret.last = ret.now()
	return ret
}

// Acquire blocks until a request slot is available or the context is done.
func (l *Limiter) Acquire(ctx context.Context) error {
	for {
		wait := l.reserve()
		if wait <= 0 {
			return nil
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve takes a token when one is available, otherwise reports how long to
// wait before trying again.
func (l *Limiter) reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	if l.tokens >= 1 {
		l.tokens--
		return 0
	}
	return time.Duration((1 - l.tokens) / l.rate * float64(time.Second))
}

func (l *Limiter) refill() {
	now := l.now()
	elapsed := now.Sub(l.last).Seconds()
	l.last = now
	l.tokens += elapsed * l.rate
	if l.tokens > l.burst {
		l.tokens = l.burst
	}
}

// Observe adapts the rate from a completed response: a 429 halves it, a
// success nudges it back toward the configured ceiling, and rate-limit
// headers cap it at the server's advertised window.
func (l *Limiter) Observe(resp *http.Response) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if resp.StatusCode == http.StatusTooManyRequests {
		l.rate *= backoffFactor
		if l.rate < minRate {
			l.rate = minRate
		}
		return
	}
	l.rate *= recoveryFactor
	if l.rate > l.maxRate {
		l.rate = l.maxRate
	}
	if advertised, ok := advertisedRate(resp.Header); ok && advertised < l.rate {
		l.rate = advertised
	}
}

// Rate returns the current admission rate in requests per second.
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rate
}

// advertisedRate derives requests per second from X-RateLimit-Limit and
// X-RateLimit-Window when both are present.
func advertisedRate(header http.Header) (float64, bool) {
	limit, err := strconv.Atoi(header.Get(schema.HeaderRateLimitLimit))
	if err != nil || limit <= 0 {
		return 0, false
	}
	window, err := strconv.Atoi(header.Get(schema.HeaderRateLimitWindow))
	if err != nil || window <= 0 {
		window = 60
	}
	return float64(limit) / float64(window), true
}
