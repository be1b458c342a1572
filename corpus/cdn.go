package corpus

import "github.com/0xERR0R/regdomain/cache/stringcache"

// CdnSet is the immutable set of main domains served by a CDN
type CdnSet struct {
	cache stringcache.StringCache
}

// NewCdnSet builds a set from domains, empty entries are skipped
func NewCdnSet(domains []string) *CdnSet {
	factory := stringcache.NewStringCacheFactory()

	for _, d := range domains {
		factory.AddEntry(d)
	}

	return &CdnSet{cache: factory.Create()}
}

// Contains reports whether the main domain is in the set. There is no suffix or
// case insensitive matching.
func (c *CdnSet) Contains(mainDomain string) bool {
	return c.cache.Contains(mainDomain)
}

// Len returns the number of distinct domains
func (c *CdnSet) Len() int {
	return c.cache.ElementCount()
}
