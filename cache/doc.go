// Package cache provides the generic keyed store behind the richtext
// texture cache.
//
// Cache[K, V] is a mutex-guarded map with hit and miss counters. With a
// soft limit of 0 it never evicts: entries live until Delete or Clear.
// A positive soft limit turns on least-recently-used eviction, dropping a
// quarter of the entries whenever the limit is exceeded.
//
//	c := cache.New[string, *Image](0)
//	c.Set("key", img)
//	img, ok := c.Get("key")
//
// # Thread Safety
//
// All methods are safe for concurrent use. A Cache must not be copied
// after creation.
package cache
