package stringcache

import (
	"sort"
	"strings"
)

// StringCache is an immutable set of strings.
type StringCache interface {
	ElementCount() int
	Contains(searchString string) bool
}

// CacheFactory collects entries and builds a StringCache from them.
type CacheFactory interface {
	AddEntry(entry string)
	Create() StringCache
	Count() int
}

// stringMap holds, per string length, all entries of that length
// sorted and concatenated into one string.
type stringMap map[int]string

func (cache stringMap) ElementCount() int {
	count := 0

	for k, v := range cache {
		count += len(v) / k
	}

	return count
}

// Contains checks for an exact match.
func (cache stringMap) Contains(searchString string) bool {
	searchLen := len(searchString)

	if searchLen == 0 {
		return false
	}

	bucket := cache[searchLen]
	searchBucketLen := len(bucket) / searchLen

	idx := sort.Search(searchBucketLen, func(i int) bool {
		return bucket[i*searchLen:i*searchLen+searchLen] >= searchString
	})

	if idx < searchBucketLen {
		return bucket[idx*searchLen:idx*searchLen+searchLen] == searchString
	}

	return false
}

type stringCacheFactory struct {
	// temporary map which holds sorted slice of strings grouped by string length
	tmp map[int][]string
	cnt int
}

// NewStringCacheFactory returns a factory for exact match caches.
func NewStringCacheFactory() CacheFactory {
	return &stringCacheFactory{
		tmp: make(map[int][]string),
	}
}

func (s *stringCacheFactory) Count() int {
	return s.cnt
}

func (s *stringCacheFactory) insertString(entry string) {
	entryLen := len(entry)
	bucket := s.tmp[entryLen]
	ix := sort.SearchStrings(bucket, entry)

	if ix < len(bucket) && bucket[ix] == entry {
		return
	}

	// extend internal bucket
	bucket = append(bucket, "")

	// move elements to make place for the insertion
	copy(bucket[ix+1:], bucket[ix:])

	// insert string at the calculated position
	bucket[ix] = entry
	s.tmp[entryLen] = bucket
	s.cnt++
}

// AddEntry adds entry to the cache, empty strings are skipped.
func (s *stringCacheFactory) AddEntry(entry string) {
	if len(entry) > 0 {
		s.insertString(entry)
	}
}

func (s *stringCacheFactory) Create() StringCache {
	cache := make(stringMap, len(s.tmp))
	for k, v := range s.tmp {
		cache[k] = strings.Join(v, "")
	}

	s.tmp = nil

	return cache
}
