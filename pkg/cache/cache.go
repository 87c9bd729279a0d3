// Package cache provides byte-oriented caches for ontokit.
//
// The CLI caches responses from the OntoUML server (transformations are
// deterministic for a given model and option set) and the HTTP API caches
// export documents by snapshot hash. Three backends implement [Cache]:
//
//   - [FileCache]: one file per entry under ~/.cache/ontokit/
//   - [RedisCache]: shared cache for multi-instance API deployments
//   - [NullCache]: caching disabled
//
// Keys are built by a [Keyer] so that every component derives them the same
// way:
//
//	k := cache.NewDefaultKeyer()
//	key := k.TransformKey(serverURL, "/v1/transform/gufo", body)
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data, nil
//	}
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with an optional time-to-live.
type Cache interface {
	// Get returns the value stored under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
