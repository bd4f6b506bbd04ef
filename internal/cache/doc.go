// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, []float32](64)
//	k := c.GetOrCreate("gauss-5", func() []float32 { return build(5) })
//
// The cache holds at most its capacity; inserting past it evicts the least
// recently used entry. Cache is safe for concurrent use and must not be
// copied after creation.
package cache
