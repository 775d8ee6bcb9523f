package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a key was never set or has expired.
// Absence is a routine outcome, distinct from the backing store being
// unreachable, which surfaces as any other non-nil error.
var ErrNotFound = errors.New("cache: key not found")

// Cache is an expiring key-value store. Implementations must be safe for
// concurrent use by many in-flight requests.
type Cache interface {
	// Set writes value under key with the given TTL, overwriting silently
	// if the key already exists.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// SetNX writes value under key only if the key does not already exist.
	// It reports whether the write happened.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)

	// Get returns the value stored under key, or ErrNotFound if the key
	// was never set or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection to the backing store. Calling Close
	// more than once is a no-op.
	Close() error
}
