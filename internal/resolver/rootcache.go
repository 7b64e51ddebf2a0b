package resolver

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// rootCacheSize comfortably holds every root of the Digital Pali Dictionary
// (under 2000 roots), so eviction only matters for pathological inputs.
const rootCacheSize = 4096

type rootGroupKey struct {
	sign string
	root string
}

// RootGroupCache memoizes (root_sign, root_key) → root-group lookups for the
// life of the process. Misses are cached as "" so absent roots are queried at
// most once. Safe for concurrent use; invalidated only by explicit Reset.
type RootGroupCache struct {
	cache *lru.Cache[rootGroupKey, string]
}

// NewRootGroupCache creates an empty root-group cache.
func NewRootGroupCache() *RootGroupCache {
	cache, err := lru.New[rootGroupKey, string](rootCacheSize)
	if err != nil {
		// lru.New fails only for a non-positive size.
		panic(err)
	}
	return &RootGroupCache{cache: cache}
}

func (c *RootGroupCache) get(sign, root string) (string, bool) {
	return c.cache.Get(rootGroupKey{sign: sign, root: root})
}

func (c *RootGroupCache) put(sign, root, group string) {
	c.cache.Add(rootGroupKey{sign: sign, root: root}, group)
}

// Reset drops every cached root group. Use after swapping the backing store.
func (c *RootGroupCache) Reset() {
	c.cache.Purge()
}

// Len returns the number of cached root groups.
func (c *RootGroupCache) Len() int {
	return c.cache.Len()
}
