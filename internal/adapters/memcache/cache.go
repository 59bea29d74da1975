// Package memcache is the in-process domain.Cache implementation. It is the
// default token-cache backend: a single instance needs nothing more, and
// tests get a cache they can build fresh and inspect without a server.
package memcache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"flex_reviews/internal/adapters/observability"
)

type entry struct {
	value []byte
	exp   time.Time // zero means no expiry
}

type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
}

func New() *Cache {
	return &Cache{items: make(map[string]entry)}
}

func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || (!e.exp.IsZero() && time.Now().After(e.exp)) {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(e.value, dst)
}

func (c *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e := entry{value: b}
	if ttlSec > 0 {
		e.exp = time.Now().Add(time.Duration(ttlSec) * time.Second)
	}
	c.mu.Lock()
	c.items[key] = e
	c.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (c *Cache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}
