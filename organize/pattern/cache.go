package pattern

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used by NewCache when size is not positive.
const DefaultCacheSize = 256

type cacheKey struct {
	raw           string
	caseSensitive bool
}

// Cache keeps recently compiled patterns. It is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, *Pattern]
}

// NewCache creates a cache holding up to size patterns.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, *Pattern](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Compile returns a cached pattern or compiles and caches a new one.
// Invalid patterns are not cached.
func (c *Cache) Compile(raw string, caseSensitive bool) (*Pattern, error) {
	key := cacheKey{raw: raw, caseSensitive: caseSensitive}
	if p, ok := c.entries.Get(key); ok {
		return p, nil
	}
	p, err := Compile(raw, caseSensitive)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, p)
	return p, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int { return c.entries.Len() }
