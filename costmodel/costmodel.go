package costmodel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/cache"
	"github.com/shavecost/shavecost/shave/serializer"
)

// CostModel is the single entry point a caller queries: it wires the
// sanitiser, the LRU cache, and the provider chain into the contract the
// spec calls compute_cycles.
type CostModel struct {
	sanitiser    shave.Sanitiser
	provider     shave.CostProvider
	cache        *cache.Cache
	cacheMetrics *cache.Metrics
	logger       serializer.QueryLogger
	log          *logrus.Logger
}

// Option configures a CostModel at construction time.
type Option func(*CostModel)

// WithCacheSize sets the LRU cache capacity; 0 disables caching.
func WithCacheSize(size int) Option {
	return func(m *CostModel) { m.cache = cache.New(size) }
}

// WithCacheMetrics registers prometheus counters for cache hit/miss/store
// events against reg.
func WithCacheMetrics(reg prometheus.Registerer) Option {
	return func(m *CostModel) { m.cacheMetrics = cache.NewMetrics(reg) }
}

// WithQueryLogger attaches a QueryLogger every completed query is reported to.
func WithQueryLogger(l serializer.QueryLogger) Option {
	return func(m *CostModel) { m.logger = l }
}

// WithLogger attaches a structured logger for diagnostic output.
func WithLogger(l *logrus.Logger) Option {
	return func(m *CostModel) { m.log = l }
}

// New builds a CostModel backed by provider, applying opts in order.
// Defaults: no cache, no query logger, a standard logrus logger.
func New(provider shave.CostProvider, opts ...Option) *CostModel {
	m := &CostModel{
		sanitiser: shave.NewSanitiser(),
		provider:  provider,
		cache:     cache.New(0),
		logger:    serializer.NopQueryLogger{},
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ComputeCycles is the primary query path: consult the cache first, then
// sanitise on a miss, then fall through to the provider, caching and
// logging the result. skipCache bypasses both the cache lookup and the
// cache store for this single query without disabling the cache for
// anything else.
func (m *CostModel) ComputeCycles(wl shave.SHAVEWorkload, skipCache bool) shave.CyclesInterfaceType {
	if !skipCache {
		if cycles, ok := m.cache.Get(wl); ok {
			m.cacheMetrics.ObserveGet(true)
			m.logQuery(wl, cycles, "cache")
			return cycles
		}
		m.cacheMetrics.ObserveGet(false)
	}

	report := m.sanitiser.CheckAndSanitize(wl)
	if !report.Usable() {
		m.log.WithFields(logrus.Fields{"kernel": wl.Name, "device": wl.Device.String(), "reason": report.Info}).
			Debug("workload rejected by sanitiser")
		return report.Value()
	}

	cycles, sourceTag := m.provider.GetCost(wl)
	if shave.IsError(cycles) {
		m.log.WithFields(logrus.Fields{"kernel": wl.Name, "device": wl.Device.String(), "error": shave.Text(cycles)}).
			Debug("provider returned an error")
		return cycles
	}

	if !skipCache {
		before := m.cache.Len()
		m.cache.Add(wl, cycles)
		if m.cache.Len() != before {
			m.cacheMetrics.ObserveAdd(m.cache.Len())
		}
	}

	m.logQuery(wl, cycles, sourceTag)
	return cycles
}

func (m *CostModel) logQuery(wl shave.SHAVEWorkload, cycles shave.CyclesInterfaceType, sourceTag string) {
	if err := m.logger.Log(wl, cycles, sourceTag); err != nil {
		m.log.WithError(err).Warn("failed to log query")
	}
}

// GetMaxNumParams delegates to the underlying provider.
func (m *CostModel) GetMaxNumParams() int { return m.provider.GetMaxNumParams() }

// GetShaveSupportedOps delegates to the underlying provider.
func (m *CostModel) GetShaveSupportedOps(device shave.VPUDevice) []string {
	return m.provider.GetShaveSupportedOps(device)
}

// GetShaveInstance delegates to the underlying provider.
func (m *CostModel) GetShaveInstance(name string, device shave.VPUDevice) (shave.Executor, bool) {
	return m.provider.GetShaveInstance(name, device)
}

// Close releases the query logger, flushing any buffered rows.
func (m *CostModel) Close() error {
	return m.logger.Close()
}
