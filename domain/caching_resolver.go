package domain

import (
	"github.com/0xERR0R/regdomain/cache/lrucache"
	"github.com/0xERR0R/regdomain/config"
	"github.com/0xERR0R/regdomain/evt"
	"github.com/0xERR0R/regdomain/log"
)

// CachingResolver remembers main domains of recently resolved hosts.
//
// The corpus never changes during the lifetime of a resolver, so entries
// are only evicted when the cache is full.
type CachingResolver struct {
	*Resolver

	resultCache lrucache.Cache[cachedResult]
}

type cachedResult struct {
	mainDomain string
	kind       string
}

// NewCachingResolver wraps next with a result cache. If caching is disabled, next is returned as is.
func NewCachingResolver(cfg config.CachingConfig, next *Resolver) DomainResolver {
	if !cfg.IsEnabled() {
		return next
	}

	return &CachingResolver{
		Resolver:    next,
		resultCache: lrucache.NewCache(lrucache.WithMaxSize[cachedResult](uint(cfg.MaxItemsCount))),
	}
}

// Parse implements `DomainResolver`.
func (c *CachingResolver) Parse(input string) (Result, error) {
	return c.parse(input, c.cachedResolve)
}

// MainDomain implements `DomainResolver`.
func (c *CachingResolver) MainDomain(host string) (string, error) {
	host, err := c.prepare(host)
	if err != nil {
		return "", err
	}

	return c.cachedResolve(host), nil
}

func (c *CachingResolver) cachedResolve(host string) string {
	if val, found := c.resultCache.Get(host); found {
		logger().WithField("host", log.EscapeInput(host)).Trace("result cache hit")

		evt.Bus().Publish(evt.ResolverCacheHit, host)
		evt.Bus().Publish(evt.DomainResolved, val.kind)

		return val.mainDomain
	}

	evt.Bus().Publish(evt.ResolverCacheMiss, host)

	var val cachedResult
	val.mainDomain, val.kind = c.match(host)

	c.resultCache.Put(host, val)

	evt.Bus().Publish(evt.ResolverCacheChanged, c.resultCache.TotalCount())
	evt.Bus().Publish(evt.DomainResolved, val.kind)

	return val.mainDomain
}
