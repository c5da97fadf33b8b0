// Package cache provides a small key-value cache abstraction with TTL
// support, backed by either an in-process map or Redis.
package cache

import (
	"context"
	"time"
)

// Store is a TTL key-value cache.
type Store interface {
	// Get returns the cached value and whether the key was present and
	// not expired.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value under key for the given TTL. A zero TTL stores
	// the value without expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
