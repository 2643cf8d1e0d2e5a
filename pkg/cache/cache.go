// Package cache stores rendered artifacts so repeated exports of an
// unchanged layout are served without drawing again.
//
// Keys are derived from a content hash of the layout document plus the
// render options (see [Keyer]); a changed file therefore never hits a stale
// entry and no invalidation is needed beyond the optional TTL.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-blob store.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
