// Package cache provides the bounded, explicitly owned caches used by the
// registry, the type inspector and the hierarchy order indexes.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// LRU is a typed, thread-safe least-recently-used cache.
type LRU[K comparable, V any] struct {
	inner *lru.Cache
}

// New creates a cache holding at most size entries.
func New[K comparable, V any](size int) (*LRU[K, V], error) {
	inner, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache of size %d: %w", size, err)
	}

	return &LRU[K, V]{inner: inner}, nil
}

// MustNew is New for sizes known to be valid.
func MustNew[K comparable, V any](size int) *LRU[K, V] {
	c, err := New[K, V](size)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	raw, ok := c.inner.Get(key)
	if !ok {
		var zero V
		return zero, false
	}

	return raw.(V), true
}

// Add stores value under key and reports whether an older entry was evicted.
func (c *LRU[K, V]) Add(key K, value V) bool {
	return c.inner.Add(key, value)
}

// GetOrAdd returns the cached value or stores the one produced by build.
// build errors are returned as is and nothing is cached.
func (c *LRU[K, V]) GetOrAdd(key K, build func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := build()
	if err != nil {
		return v, err
	}

	c.Add(key, v)

	return v, nil
}

func (c *LRU[K, V]) Remove(key K) {
	c.inner.Remove(key)
}

func (c *LRU[K, V]) Len() int {
	return c.inner.Len()
}

// Purge drops every entry.
func (c *LRU[K, V]) Purge() {
	c.inner.Purge()
}
