package cache

import (
	"context"
	"time"
)

// NullCache backs `[cache] backend = "none"`. Transform responses and export
// documents are never kept, so every verify or transform call reaches the
// OntoUML server and every export is serialized again.
type NullCache struct{}

// NewNullCache returns the cache used when caching is off.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get reports a miss for every transform or export key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards data.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
