package metrics

import (
	"fmt"
	"sync"

	"github.com/0xERR0R/regdomain/evt"
	"github.com/0xERR0R/regdomain/instanceid"
	"github.com/0xERR0R/regdomain/util"

	"github.com/prometheus/client_golang/prometheus"
)

//nolint:gochecknoglobals
var registerOnce sync.Once

// RegisterEventListeners registers all metric handlers by the event bus.
// Subsequent calls have no effect.
func RegisterEventListeners() {
	registerOnce.Do(func() {
		registerApplicationEventListeners()
		registerCorpusEventListeners()
		registerResolverEventListeners()
	})
}

func registerApplicationEventListeners() {
	v := versionNumberGauge()
	RegisterMetric(v)

	subscribe(evt.ApplicationStarted, func(version, buildTime string) {
		v.WithLabelValues(version, buildTime, instanceid.String()).Set(1)
	})
}

func versionNumberGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "regdomain_build_info",
			Help: "Version number and build info",
		}, []string{"version", "build_time", "instance_id"},
	)
}

func registerCorpusEventListeners() {
	entries := corpusEntriesGauge()

	RegisterMetric(entries)

	subscribe(evt.CorpusLoaded, func(name string, cnt int) {
		entries.WithLabelValues(name).Set(float64(cnt))
	})
}

func corpusEntriesGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "regdomain_corpus_entries",
			Help: "Number of entries in a loaded corpus",
		}, []string{"corpus"},
	)
}

func registerResolverEventListeners() {
	resolved := resolvedCount()
	idnFailed := idnDecodeFailedCount()
	hitCount := cacheHitCount()
	missCount := cacheMissCount()
	entryCount := cacheEntryCount()

	RegisterMetric(resolved)
	RegisterMetric(idnFailed)
	RegisterMetric(hitCount)
	RegisterMetric(missCount)
	RegisterMetric(entryCount)

	subscribe(evt.DomainResolved, func(kind string) {
		resolved.WithLabelValues(kind).Inc()
	})

	subscribe(evt.IdnDecodeFailed, func(_ string) {
		idnFailed.Inc()
	})

	subscribe(evt.ResolverCacheHit, func(_ string) {
		hitCount.Inc()
	})

	subscribe(evt.ResolverCacheMiss, func(_ string) {
		missCount.Inc()
	})

	subscribe(evt.ResolverCacheChanged, func(cnt int) {
		entryCount.Set(float64(cnt))
	})
}

func resolvedCount() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "regdomain_resolved_total",
			Help: "Number of main domain resolutions by matched suffix kind",
		}, []string{"kind"},
	)
}

func idnDecodeFailedCount() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "regdomain_idn_decode_failed_total",
		Help: "Number of hosts which could not be decoded from punycode",
	})
}

func cacheHitCount() prometheus.Counter {
	return prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "regdomain_cache_hits_total",
			Help: "Cache hit counter",
		},
	)
}

func cacheMissCount() prometheus.Counter {
	return prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "regdomain_cache_misses_total",
			Help: "Cache miss counter",
		},
	)
}

func cacheEntryCount() prometheus.Gauge {
	return prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "regdomain_cache_entries",
			Help: "Number of entries in the result cache",
		},
	)
}

func subscribe(topic string, fn interface{}) {
	util.FatalOnError(fmt.Sprintf("can't subscribe topic '%s'", topic), evt.Bus().Subscribe(topic, fn))
}
