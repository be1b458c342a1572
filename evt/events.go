package evt

import (
	"github.com/asaskevich/EventBus"
)

const (
	// CorpusLoaded fires when a corpus was read. Parameter: corpus name, element count
	CorpusLoaded = "corpus:loaded"

	// DomainResolved fires after a main domain resolution. Parameter: kind of the matched suffix
	// ("cctld", "gtld", "none" or "ip")
	DomainResolved = "domain:resolved"

	// IdnDecodeFailed fires if an ASCII compatible encoded host could not be decoded. Parameter: host
	IdnDecodeFailed = "idn:decodeFailed"

	// ResolverCacheHit fires, if a main domain was found in the result cache. Parameter: host
	ResolverCacheHit = "resolver:cacheHit"

	// ResolverCacheMiss fires, if a main domain was not found in the result cache. Parameter: host
	ResolverCacheMiss = "resolver:cacheMiss"

	// ResolverCacheChanged fires if the result cache was changed. Parameter: new cache size
	ResolverCacheChanged = "resolver:cacheChanged"

	// ApplicationStarted fires on start of the application. Parameter: version number, build time
	ApplicationStarted = "application:started"
)

// nolint:gochecknoglobals
var evtBus = EventBus.New()

// Bus returns the global bus instance
func Bus() EventBus.Bus {
	return evtBus
}
