// Package cache provides snapshot-cache implementations: Redis for
// deployments, in-memory for development and tests.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "planner:snapshot:"

// RedisSnapshotCache implements port.SnapshotCache on Redis.
type RedisSnapshotCache struct {
	client *redis.Client
}

// NewRedisSnapshotCache connects to addr and verifies the connection.
func NewRedisSnapshotCache(ctx context.Context, addr, password string, db int) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisSnapshotCache{client: client}, nil
}

// Get returns the cached payload for token, if present.
func (c *RedisSnapshotCache) Get(ctx context.Context, token string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, snapshotKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return payload, true, nil
}

// Set stores the payload under token with the given TTL.
func (c *RedisSnapshotCache) Set(ctx context.Context, token string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, snapshotKeyPrefix+token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate drops the entry for token.
func (c *RedisSnapshotCache) Invalidate(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, snapshotKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}
