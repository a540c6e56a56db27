package memory

import (
	"context"
	"sync"
	"time"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

type kvEntry struct {
	value     []byte
	expiresAt time.Time // zero = no expiry
}

// KV is an in-memory ports.KVStore used in dev mode and tests. Expiry is
// evaluated lazily against the injected clock.
type KV struct {
	clock ports.Clock

	mu    sync.RWMutex
	items map[string]kvEntry
}

func NewKV(clock ports.Clock) *KV {
	return &KV{clock: clock, items: make(map[string]kvEntry)}
}

func (k *KV) Get(_ context.Context, key string) ([]byte, error) {
	k.mu.RLock()
	entry, ok := k.items[key]
	k.mu.RUnlock()
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	if !entry.expiresAt.IsZero() && k.clock.Now().After(entry.expiresAt) {
		k.mu.Lock()
		delete(k.items, key)
		k.mu.Unlock()
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (k *KV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := kvEntry{value: make([]byte, len(value))}
	copy(entry.value, value)
	if ttl > 0 {
		entry.expiresAt = k.clock.Now().Add(ttl)
	}
	k.mu.Lock()
	k.items[key] = entry
	k.mu.Unlock()
	return nil
}

func (k *KV) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	delete(k.items, key)
	k.mu.Unlock()
	return nil
}
