package lrucache

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LRU cache", func() {
	Describe("Basic operations", func() {
		When("string cache was created", func() {
			It("Initial cache should be empty", func() {
				cache := NewCache[string]()
				Expect(cache.TotalCount()).Should(Equal(0))
			})

			It("Initial cache should not contain any elements", func() {
				cache := NewCache[string]()
				val, found := cache.Get("key1")
				Expect(found).Should(BeFalse())
				Expect(val).Should(BeEmpty())
			})
		})

		When("Put new value", func() {
			It("should return the value", func() {
				cache := NewCache[string]()
				cache.Put("key1", "val1")

				val, found := cache.Get("key1")
				Expect(found).Should(BeTrue())
				Expect(val).Should(Equal("val1"))
				Expect(cache.TotalCount()).Should(Equal(1))
			})

			It("should overwrite an existing value", func() {
				cache := NewCache[string]()
				cache.Put("key1", "val1")
				cache.Put("key1", "val2")

				val, _ := cache.Get("key1")
				Expect(val).Should(Equal("val2"))
				Expect(cache.TotalCount()).Should(Equal(1))
			})
		})

		When("Clear is called", func() {
			It("should remove all elements", func() {
				cache := NewCache[string]()
				cache.Put("key1", "val1")
				cache.Put("key2", "val2")
				Expect(cache.TotalCount()).Should(Equal(2))

				cache.Clear()
				Expect(cache.TotalCount()).Should(Equal(0))
			})
		})
	})

	Describe("LRU behaviour", func() {
		When("Defined max size is reached", func() {
			It("should remove the least recently used element", func() {
				cache := NewCache(WithMaxSize[string](3))
				cache.Put("key1", "val1")
				cache.Put("key2", "val2")
				cache.Put("key3", "val3")

				// touch key1 so key2 becomes the oldest
				_, found := cache.Get("key1")
				Expect(found).Should(BeTrue())

				cache.Put("key4", "val4")

				Expect(cache.TotalCount()).Should(Equal(3))

				_, found = cache.Get("key2")
				Expect(found).Should(BeFalse())

				for _, key := range []string{"key1", "key3", "key4"} {
					_, found = cache.Get(key)
					Expect(found).Should(BeTrue(), key)
				}
			})
		})
	})
})
