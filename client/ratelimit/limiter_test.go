package ratelimit

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cirisai/ciris-go/schema"
)

func TestLimiter_AcquireWithinBurst(t *testing.T) {
	limiter := New(60, WithBurst(3))
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Acquire(ctx))
	}
}

func TestLimiter_AcquireHonorsContext(t *testing.T) {
	now := time.Now()
	limiter := New(1, WithClock(func() time.Time { return now }))
	require.NoError(t, limiter.Acquire(context.Background()))

	// bucket drained and the clock is pinned, so the next acquire must wait
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := limiter.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLimiter_RefillOverTime(t *testing.T) {
	now := time.Now()
	limiter := New(60, WithClock(func() time.Time { return now }))
	require.NoError(t, limiter.Acquire(context.Background()))

	// one request per second configured; advance two seconds
	now = now.Add(2 * time.Second)
	require.NoError(t, limiter.Acquire(context.Background()))
}

func TestLimiter_BackoffOn429(t *testing.T) {
	limiter := New(120)
	before := limiter.Rate()
	limiter.Observe(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}})
	assert.InDelta(t, before*backoffFactor, limiter.Rate(), 1e-9)
}

func TestLimiter_RateFloor(t *testing.T) {
	limiter := New(60)
	for i := 0; i < 20; i++ {
		limiter.Observe(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}})
	}
	assert.InDelta(t, minRate, limiter.Rate(), 1e-9)
}

func TestLimiter_RecoveryCappedAtConfiguredRate(t *testing.T) {
	limiter := New(60)
	limiter.Observe(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}})
	for i := 0; i < 100; i++ {
		limiter.Observe(&http.Response{StatusCode: http.StatusOK, Header: http.Header{}})
	}
	assert.InDelta(t, 1.0, limiter.Rate(), 1e-9)
}

func TestLimiter_AdvertisedRateCapsRecovery(t *testing.T) {
	limiter := New(600)
	header := http.Header{}
	header.Set(schema.HeaderRateLimitLimit, "60")
	header.Set(schema.HeaderRateLimitWindow, "60")
	limiter.Observe(&http.Response{StatusCode: http.StatusOK, Header: header})
	assert.InDelta(t, 1.0, limiter.Rate(), 1e-9)
}

func TestRegistry_PerHostIsolation(t *testing.T) {
	registry := NewRegistry(60)
	a := registry.Limiter("agent-a:8080")
	b := registry.Limiter("agent-b:8080")
	assert.NotSame(t, a, b)
	assert.Same(t, a, registry.Limiter("agent-a:8080"))

	a.Observe(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}})
	assert.Less(t, a.Rate(), b.Rate())
}
