package lrucache

import (
	lru "github.com/hashicorp/golang-lru"
)

const defaultSize = 10_000

// LRUCache is a size bounded cache without expiration.
// It is safe for concurrent use.
type LRUCache[T any] struct {
	lru *lru.Cache
}

type CacheOption[T any] func(c *LRUCache[T])

func WithMaxSize[T any](size uint) CacheOption[T] {
	return func(c *LRUCache[T]) {
		if size > 0 {
			l, _ := lru.New(int(size))
			c.lru = l
		}
	}
}

func NewCache[T any](options ...CacheOption[T]) *LRUCache[T] {
	l, _ := lru.New(defaultSize)
	c := &LRUCache[T]{
		lru: l,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

func (c *LRUCache[T]) Put(key string, val T) {
	c.lru.Add(key, val)
}

func (c *LRUCache[T]) Get(key string) (val T, found bool) {
	el, found := c.lru.Get(key)
	if !found {
		return val, false
	}

	return el.(T), true
}

func (c *LRUCache[T]) TotalCount() int {
	return c.lru.Len()
}

func (c *LRUCache[T]) Clear() {
	c.lru.Purge()
}
