package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindwell/backend-go/internal/config"
)

// LoginLimiter throttles repeated failed login attempts per email using Redis
type LoginLimiter interface {
	// Allow reports whether the email may attempt a login
	Allow(ctx context.Context, email string) (bool, error)

	// RecordFailure counts one failed attempt within the current window
	RecordFailure(ctx context.Context, email string) error

	// Reset clears the failure count after a successful login
	Reset(ctx context.Context, email string) error

	// Close closes the Redis connection
	Close() error
}

type redisLoginLimiter struct {
	client      *redis.Client
	logger      *slog.Logger
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a new Redis-based login limiter
func NewLoginLimiter(cfg *config.Config, logger *slog.Logger) (LoginLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [LoginLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [LoginLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
	)

	return &redisLoginLimiter{
		client:      client,
		logger:      logger,
		maxAttempts: cfg.LoginMaxAttempts,
		window:      time.Duration(cfg.LoginWindow) * time.Second,
	}, nil
}

// NewLoginLimiterForTesting creates a login limiter with a provided redis.Client (for testing)
func NewLoginLimiterForTesting(client *redis.Client, cfg *config.Config, logger *slog.Logger) LoginLimiter {
	return &redisLoginLimiter{
		client:      client,
		logger:      logger,
		maxAttempts: cfg.LoginMaxAttempts,
		window:      time.Duration(cfg.LoginWindow) * time.Second,
	}
}

// loginKey generates the Redis key for failed-login counting
// Format: login:fail:{email}
func loginKey(email string) string {
	return fmt.Sprintf("login:fail:%s", email)
}

func (r *redisLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if r.maxAttempts <= 0 {
		return true, nil
	}

	count, err := r.client.Get(ctx, loginKey(email)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		r.logger.Error("❌ [LoginLimiter] Failed to read attempt count", "error", err)
		// On error, allow the request but log it
		return true, err
	}

	return count < r.maxAttempts, nil
}

func (r *redisLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := loginKey(email)

	pipe := r.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [LoginLimiter] Failed to record attempt", "error", err)
		return err
	}
	return nil
}

func (r *redisLoginLimiter) Reset(ctx context.Context, email string) error {
	return r.client.Del(ctx, loginKey(email)).Err()
}

func (r *redisLoginLimiter) Close() error {
	return r.client.Close()
}

// NoOpLoginLimiter is a login limiter that always allows attempts.
// Used when Redis is not available.
type NoOpLoginLimiter struct {
	logger *slog.Logger
}

// NewNoOpLoginLimiter creates a no-op login limiter
func NewNoOpLoginLimiter(logger *slog.Logger) LoginLimiter {
	logger.Warn("⚠️ [LoginLimiter] Using no-op login limiter - throttling is disabled")
	return &NoOpLoginLimiter{logger: logger}
}

func (r *NoOpLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	return true, nil
}

func (r *NoOpLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	return nil
}

func (r *NoOpLoginLimiter) Reset(ctx context.Context, email string) error {
	return nil
}

func (r *NoOpLoginLimiter) Close() error {
	return nil
}
