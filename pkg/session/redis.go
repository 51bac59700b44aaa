package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a session store backed by Redis. State is serialized as a JSON
// blob per token; TTL is enforced server-side so sessions expire even if
// this process restarts.
type Redis[V any] struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis-backed store from a redis:// or rediss:// URL.
func NewRedis[V any](ctx context.Context, url string, ttl time.Duration) (*Redis[V], error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("session: invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session: redis connection failed: %w", err)
	}

	return &Redis[V]{client: client, prefix: "session", ttl: ttl}, nil
}

// Get retrieves the state for a token.
func (r *Redis[V]) Get(ctx context.Context, token string) (V, error) {
	var zero V

	data, err := r.client.Get(ctx, r.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("session: redis get failed: %w", err)
	}

	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return zero, fmt.Errorf("session: failed to decode state: %w", err)
	}
	return value, nil
}

// Put stores state under a token, resetting its TTL.
func (r *Redis[V]) Put(ctx context.Context, token string, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session: failed to encode state: %w", err)
	}

	// Redis interprets 0 as no expiration, matching the memory store.
	if err := r.client.Set(ctx, r.key(token), data, max(r.ttl, 0)).Err(); err != nil {
		return fmt.Errorf("session: redis set failed: %w", err)
	}
	return nil
}

// Delete removes the state for a token.
func (r *Redis[V]) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
		return fmt.Errorf("session: redis del failed: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client.
func (r *Redis[V]) Close() error {
	return r.client.Close()
}

// Health pings Redis; usable as a named health check.
func (r *Redis[V]) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("session: redis health check failed: %w", err)
	}
	return nil
}

func (r *Redis[V]) key(token string) string {
	return r.prefix + ":" + token
}
