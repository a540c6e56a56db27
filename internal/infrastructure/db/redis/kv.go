package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/younivent/platform/internal/core/domain"
)

// keyPrefix namespaces the platform's preference and session keys in a
// possibly shared Redis instance.
const keyPrefix = "younivent:"

// KV is the Redis-backed ports.KVStore holding preferences and sessions.
type KV struct {
	client *redis.Client
}

func NewKV(client *redis.Client) *KV {
	return &KV{client: client}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := k.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return raw, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := k.client.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	if err := k.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	return nil
}
