package ports

import (
	"context"
	"time"
)

// KVStore is the durable key-value space backing preferences and sessions.
// Same contract as browser local storage: opaque string keys, serialized
// values, last write wins.
type KVStore interface {
	// Get returns the stored bytes or domain.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Clock abstracts time.Now so expiry logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}
