package interview

import (
	"context"
	"sync"
)

// Cache is a keyed store for live session state. Hosts serving one
// candidate per process can ignore it; multi-session hosts key it by
// whatever routes a candidate to their session.
type Cache[S any] interface {
	Set(ctx context.Context, key string, val S) error
	Get(ctx context.Context, key string) (S, bool, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// MemoryCache is the in-process Cache used by default.
type MemoryCache[S any] struct {
	mu sync.RWMutex
	m  map[string]S
}

func NewMemoryCache[S any]() *MemoryCache[S] {
	return &MemoryCache[S]{m: map[string]S{}}
}

func (m *MemoryCache[S]) Set(ctx context.Context, key string, val S) error {
	m.mu.Lock()
	m.m[key] = val
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache[S]) Get(ctx context.Context, key string) (S, bool, error) {
	m.mu.RLock()
	val, ok := m.m[key]
	m.mu.RUnlock()
	return val, ok, nil
}

func (m *MemoryCache[S]) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.m, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache[S]) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	_, ok := m.m[key]
	m.mu.RUnlock()
	return ok, nil
}

type sessionKeyContext struct{}

const defaultSessionKey = "default"

// WithSessionKey sets the routing key used to pick a candidate's
// session out of a Cache.
func WithSessionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, sessionKeyContext{}, key)
}

// SessionKeyFromContext gets the routing key from the context.
func SessionKeyFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(sessionKeyContext{})
	if value == nil {
		return "", false
	}
	key, ok := value.(string)
	return key, ok
}

func sessionKeyOrDefault(ctx context.Context) string {
	if key, ok := SessionKeyFromContext(ctx); ok && key != "" {
		return key
	}
	return defaultSessionKey
}
