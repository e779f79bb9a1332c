package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindwell/backend-go/internal/config"
)

// Cache keys for the public directory listings
const (
	CacheKeyCounselors = "cache:counselors"
	CacheKeyResources  = "cache:resources"
)

// RedisClient wraps the redis client with JSON cache helpers for the public
// counselor and resource listings
type RedisClient struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(cfg *config.Config, logger *slog.Logger) (*RedisClient, error) {
	logger.Info("🔌 [Redis] Connecting to Redis...",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"db", cfg.RedisDB,
	)

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [Redis] Redis connection established")

	return &RedisClient{
		client: client,
		logger: logger,
		ttl:    time.Duration(cfg.CacheTTL) * time.Second,
	}, nil
}

// NewRedisClientForTesting creates a Redis client with a provided redis.Client (for testing)
func NewRedisClientForTesting(client *redis.Client, cfg *config.Config, logger *slog.Logger) *RedisClient {
	return &RedisClient{
		client: client,
		logger: logger,
		ttl:    time.Duration(cfg.CacheTTL) * time.Second,
	}
}

// GetJSON loads a cached value into dest. It reports whether the key was
// present; cache errors are logged and surface as a miss.
func (r *RedisClient) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		r.logger.Warn("⚠️ [Redis] Cache read failed", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warn("⚠️ [Redis] Cache entry corrupt, dropping", "key", key, "error", err)
		r.client.Del(ctx, key)
		return false
	}
	return true
}

// SetJSON stores a value under key with the configured TTL. Failures are
// logged, never propagated: the cache is an optimization, not a store.
func (r *RedisClient) SetJSON(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("⚠️ [Redis] Cache marshal failed", "key", key, "error", err)
		return
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("⚠️ [Redis] Cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops the given cache keys after a mutation
func (r *RedisClient) Invalidate(ctx context.Context, keys ...string) {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("⚠️ [Redis] Cache invalidation failed", "keys", keys, "error", err)
	}
}

// Close closes the underlying Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}
