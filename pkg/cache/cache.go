// Package cache provides content-addressed caching for rendered artifacts.
//
// The render pipeline is deterministic: the same DOT text rendered to the
// same format always produces the same bytes. Cache keys are therefore
// derived from a SHA-256 hash of the DOT text plus the render options, via
// a [Keyer].
//
// Two implementations are provided: [FileCache] stores entries on disk
// under an XDG-style cache directory, and [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// TTL values for cached artifacts.
const (
	// TTLArtifact is how long rendered artifacts stay valid. Keys are
	// content-addressed, so entries never go stale; the TTL only bounds
	// disk usage over time.
	TTLArtifact = 30 * 24 * time.Hour

	// TTLNone marks entries that never expire.
	TTLNone time.Duration = 0
)

// Cache is the interface for artifact caches.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of zero means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
