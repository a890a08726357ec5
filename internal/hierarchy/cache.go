package hierarchy

import (
	"serialization-bridge/host"
	"serialization-bridge/internal/cache"
)

// Cache keeps one Index per subtree root.
type Cache struct {
	indexes *cache.LRU[string, *Index]
}

// NewCache creates a cache holding at most size indexes.
func NewCache(size int) *Cache {
	return &Cache{indexes: cache.MustNew[string, *Index](max(size, 1))}
}

// Get returns the index of root, building it on first use. Cached indexes
// refresh themselves when the subtree changed.
func (c *Cache) Get(root host.Node) *Index {
	x, _ := c.indexes.GetOrAdd(root.Identity(), func() (*Index, error) {
		return New(root), nil
	})

	return x
}

// Forget drops the index of root.
func (c *Cache) Forget(root host.Node) {
	c.indexes.Remove(root.Identity())
}

func (c *Cache) Len() int {
	return c.indexes.Len()
}
