// Package cache provides a generic LRU cache with a soft size limit.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// The text package uses it to memoize paragraph analysis, which is keyed
// by the paragraph text and recomputed far less often than it is read.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
