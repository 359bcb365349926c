package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCommands is the slice of the client the store actually uses.
type redisCommands interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisStore backs the limiter with a shared Redis counter so multiple
// instances enforce one budget. The key expires with the window, which makes
// Sweep a no-op.
type RedisStore struct {
	client *redis.Client
	cmd    redisCommands
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisStore{client: client, cmd: client}, nil
}

func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	rkey := "ratelimit:" + key

	count, err := s.cmd.Incr(ctx, rkey).Result()
	if err != nil {
		return 0, err
	}

	// Expiry is re-armed on any hit that finds the key without a TTL, not
	// just the first in a window. If an Expire once failed the key would
	// otherwise never expire and the client would stay denied forever.
	ttl, err := s.cmd.TTL(ctx, rkey).Result()
	if err != nil {
		return int(count), err
	}
	if ttl < 0 {
		if err := s.cmd.Expire(ctx, rkey, window).Err(); err != nil {
			return int(count), err
		}
	}
	return int(count), nil
}

func (s *RedisStore) Sweep(context.Context, time.Duration) error {
	return nil
}

// Client exposes the underlying connection for reuse (enrichment cache).
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
