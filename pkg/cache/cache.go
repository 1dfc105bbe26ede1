// Package cache stores rendered artifacts and measured glyph metrics.
//
// Two backends are provided: [FileCache] for the CLI and [RedisCache] for
// the render server. [NullCache] disables caching. Keys come from a [Keyer]
// so that every caller derives identical keys for identical inputs.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired key is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// Default lifetimes.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLMetrics  = 30 * 24 * time.Hour
)
