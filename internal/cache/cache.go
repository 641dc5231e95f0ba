package cache

import (
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache memoizes serialized response payloads. It is a pure performance
// optimization: a missing or expired entry only means a fallback to the
// repository, never an incorrect result. The TTL is fixed at construction.
type Cache struct {
	log *slog.Logger
	lru *expirable.LRU[string, []byte]
}

func New(log *slog.Logger, size int, ttl time.Duration) *Cache {
	return &Cache{
		log: log,
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	return c.lru.Get(key)
}

func (c *Cache) Set(key string, value []byte) {
	if evicted := c.lru.Add(key, value); evicted {
		c.log.Debug("cache eviction", slog.String("key", key))
	}
}

func (c *Cache) Delete(keys ...string) {
	for _, key := range keys {
		c.lru.Remove(key)
	}
}
