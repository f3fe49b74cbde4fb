package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWindowLimiter(t *testing.T) {
	_, client := newTestRedis(t)
	limiter, err := NewFixedWindowLimiter(quietLogger(), client, "test:ratelimit", 2, time.Minute)
	require.NoError(t, err)
	limiter.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.False(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.True(t, limiter.Allow(ctx, "10.0.0.2"))

	limiter.now = func() time.Time { return time.UnixMilli(1_700_000_000_000).Add(time.Minute) }
	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
}

func TestFixedWindowLimiterFailsClosed(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter, err := NewFixedWindowLimiter(quietLogger(), client, "", 5, time.Minute)
	require.NoError(t, err)
	mr.Close()

	assert.False(t, limiter.Allow(context.Background(), "10.0.0.1"))
}

func TestFixedWindowLimiterRejectsBadConfig(t *testing.T) {
	_, client := newTestRedis(t)

	_, err := NewFixedWindowLimiter(quietLogger(), client, "", 0, time.Minute)
	assert.Error(t, err)
	_, err = NewFixedWindowLimiter(quietLogger(), nil, "", 1, time.Minute)
	assert.Error(t, err)

	var nilLimiter *FixedWindowLimiter
	assert.False(t, nilLimiter.Allow(context.Background(), "x"))
}
