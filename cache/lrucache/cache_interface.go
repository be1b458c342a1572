package lrucache

type Cache[T any] interface {
	// Put adds the value to the cache under the passed key, evicting the least recently used entry if full
	Put(key string, val T)

	// Get returns the cached value and true, or the zero value and false if the key is not cached
	Get(key string) (val T, found bool)

	// TotalCount returns the count of cached elements
	TotalCount() int

	// Clear removes all cache entries
	Clear()
}
