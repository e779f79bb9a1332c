package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/backend-go/internal/config"
	"github.com/mindwell/backend-go/internal/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupLimiter(t *testing.T, maxAttempts, windowSeconds int64) (middleware.LoginLimiter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cfg := &config.Config{
		LoginMaxAttempts: maxAttempts,
		LoginWindow:      windowSeconds,
	}
	return middleware.NewLoginLimiterForTesting(client, cfg, testLogger()), mr
}

func TestLoginLimiter_BlocksAfterMaxFailures(t *testing.T) {
	limiter, _ := setupLimiter(t, 3, 900)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, allowed)
		require.NoError(t, limiter.RecordFailure(ctx, "a@x.com"))
	}

	allowed, err := limiter.Allow(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other accounts are unaffected
	allowed, err = limiter.Allow(ctx, "b@x.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoginLimiter_ResetClearsFailures(t *testing.T) {
	limiter, _ := setupLimiter(t, 1, 900)
	ctx := context.Background()

	require.NoError(t, limiter.RecordFailure(ctx, "a@x.com"))

	allowed, err := limiter.Allow(ctx, "a@x.com")
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "a@x.com"))

	allowed, err = limiter.Allow(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	limiter, mr := setupLimiter(t, 1, 60)
	ctx := context.Background()

	require.NoError(t, limiter.RecordFailure(ctx, "a@x.com"))

	allowed, err := limiter.Allow(ctx, "a@x.com")
	require.NoError(t, err)
	require.False(t, allowed)

	mr.FastForward(61 * time.Second)

	allowed, err = limiter.Allow(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoginLimiter_ZeroLimitDisablesThrottling(t *testing.T) {
	limiter, _ := setupLimiter(t, 0, 60)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		require.NoError(t, limiter.RecordFailure(ctx, "a@x.com"))
	}

	allowed, err := limiter.Allow(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}
