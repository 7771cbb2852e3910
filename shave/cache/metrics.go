package cache

import "github.com/prometheus/client_golang/prometheus"

const promMetricPrefix = "shavecost_cache_"

// Metrics holds a cache's hit/miss/store/purge counters and entry-count
// gauge (it does not hold the Cache itself), registered under the
// shavecost_cache_ prefix, the same naming convention the observability
// stack uses for its own gauges.
type Metrics struct {
	hits    prometheus.Counter
	misses  prometheus.Counter
	stores  prometheus.Counter
	purges  prometheus.Counter
	entries prometheus.Gauge
}

// NewMetrics registers a fresh set of counters against reg. Passing a
// prometheus.NewRegistry() per CostModel instance (rather than the global
// DefaultRegisterer) keeps repeated construction in tests from colliding on
// duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits:    prometheus.NewCounter(prometheus.CounterOpts{Name: promMetricPrefix + "hits_total", Help: "cache lookups that found a cached cost"}),
		misses:  prometheus.NewCounter(prometheus.CounterOpts{Name: promMetricPrefix + "misses_total", Help: "cache lookups that found nothing"}),
		stores:  prometheus.NewCounter(prometheus.CounterOpts{Name: promMetricPrefix + "stores_total", Help: "successful cache inserts"}),
		purges:  prometheus.NewCounter(prometheus.CounterOpts{Name: promMetricPrefix + "purges_total", Help: "cache purges"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{Name: promMetricPrefix + "entries", Help: "current cache entry count"}),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.stores, m.purges, m.entries)
	}
	return m
}

// ObserveGet records a Cache.Get outcome.
func (m *Metrics) ObserveGet(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.hits.Inc()
	} else {
		m.misses.Inc()
	}
}

// ObserveAdd records a successful Cache.Add and the cache's new size.
func (m *Metrics) ObserveAdd(newSize int) {
	if m == nil {
		return
	}
	m.stores.Inc()
	m.entries.Set(float64(newSize))
}

// ObservePurge records a Cache.Purge.
func (m *Metrics) ObservePurge() {
	if m == nil {
		return
	}
	m.purges.Inc()
	m.entries.Set(0)
}
