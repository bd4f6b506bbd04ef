package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most capacity entries.
// A capacity of 0 or less means unlimited.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int
}

// New creates an empty cache.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the lock, so concurrent misses build the value once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.order.moveToFront(n)
		return n.value
	}

	v := create()
	c.entries[key] = c.order.pushFront(key, v)
	for c.capacity > 0 && c.order.len > c.capacity {
		old := c.order.removeOldest()
		delete(c.entries, old.key)
	}
	return v
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.order = lruList[K, V]{}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
