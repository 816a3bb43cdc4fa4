package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// QueryCache remembers rendered SQL by statement fingerprint.
type QueryCache interface {
	Get(fingerprint uint64) (string, bool)
	Set(fingerprint uint64, sql string)
	Len() int
	Purge()
}

type lruQueryCache struct {
	cache *lru.Cache[uint64, string]
}

// NewQueryCache returns a cache bounded to size entries, evicting the
// least recently used. The hashicorp LRU is internally synchronized.
func NewQueryCache(size int) (QueryCache, error) {
	c, err := lru.New[uint64, string](size)
	if err != nil {
		return nil, fmt.Errorf("query cache: %w", err)
	}
	return &lruQueryCache{cache: c}, nil
}

func (c *lruQueryCache) Get(fingerprint uint64) (string, bool) {
	return c.cache.Get(fingerprint)
}

func (c *lruQueryCache) Set(fingerprint uint64, sql string) {
	c.cache.Add(fingerprint, sql)
}

func (c *lruQueryCache) Len() int {
	return c.cache.Len()
}

func (c *lruQueryCache) Purge() {
	c.cache.Purge()
}
