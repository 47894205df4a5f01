package interview

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const defaultRedisTTL = 24 * time.Hour

// RedisCache stores values as JSON in Redis, letting several host
// processes route turns for the same candidate to one session state.
// Values must round-trip through JSON; *Session does.
type RedisCache[S any] struct {
	client    redis.UniversalClient
	namespace string
	ttl       time.Duration
}

// NewRedisCache creates a Redis-backed Cache under the given key
// namespace. A non-positive ttl falls back to 24h.
func NewRedisCache[S any](client redis.UniversalClient, namespace string, ttl time.Duration) *RedisCache[S] {
	if ttl <= 0 {
		ttl = defaultRedisTTL
	}
	return &RedisCache[S]{client: client, namespace: namespace, ttl: ttl}
}

func (r *RedisCache[S]) key(key string) string {
	if r.namespace == "" {
		return key
	}
	return r.namespace + ":" + key
}

func (r *RedisCache[S]) Set(ctx context.Context, key string, val S) error {
	data, err := sonic.Marshal(val)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), data, r.ttl).Err()
}

func (r *RedisCache[S]) Get(ctx context.Context, key string) (S, bool, error) {
	var val S
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return val, false, nil
		}
		return val, false, err
	}
	if err := sonic.Unmarshal(data, &val); err != nil {
		return val, false, err
	}
	return val, true, nil
}

func (r *RedisCache[S]) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *RedisCache[S]) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var (
	_ Cache[*Session] = (*MemoryCache[*Session])(nil)
	_ Cache[*Session] = (*RedisCache[*Session])(nil)
)
