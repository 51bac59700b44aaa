// Package session provides token-keyed, session-scoped state storage.
// Each interactive session owns exactly one state value identified by an
// opaque token carried in a cookie; state survives request/response cycles
// but not beyond the store's TTL.
package session

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors.
var (
	// ErrNotFound indicates no state exists for the token.
	ErrNotFound = errors.New("session: not found")
)

// Store persists per-session state across interaction steps.
// V is the state type; implementations must treat values as opaque.
//
// Concurrency: a token is only ever written by the single active request
// for that session, but the store itself is shared across sessions and must
// be safe for concurrent use.
type Store[V any] interface {
	// Get retrieves the state for a token.
	// Returns ErrNotFound if the token has no state or it expired.
	Get(ctx context.Context, token string) (V, error)

	// Put stores state under a token, resetting its TTL.
	Put(ctx context.Context, token string, value V) error

	// Delete removes the state for a token. Deleting an absent token is
	// not an error.
	Delete(ctx context.Context, token string) error

	// Close releases store resources.
	Close() error
}

// Config holds session store configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	RedisURL string        `env:"SESSION_REDIS_URL"` // empty = in-memory store
	TTL      time.Duration `env:"SESSION_TTL" envDefault:"2h"`
}
