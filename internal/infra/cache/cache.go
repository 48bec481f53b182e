package cache

import (
	"context"
	"time"
)

// Store is the key-value port backing the hidden-instructor read-through
// cache and the marquee dismissal records. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get fetches the value for key, returning ErrMiss when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value with the given TTL. Zero or negative TTL means no
	// expiration.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del removes keys. Missing keys are not an error.
	Del(ctx context.Context, keys ...string) error

	Close() error
}

// ErrMiss signals a cache miss in a typed way, so callers can tell misses
// from transport errors.
var ErrMiss = errMiss{}

type errMiss struct{}

func (errMiss) Error() string { return "cache: miss" }
