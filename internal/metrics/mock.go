package metrics

import "sync"

// Mock is a no-op Metrics implementation that records call counts.
type Mock struct {
	mu sync.Mutex

	Aggregations     int
	CacheHitCount    int
	CacheMissCount   int
	DigestsPublished int
	NotifSent        int
	NotifFailed      int
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncAggregations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Aggregations++
}

func (m *Mock) ObserveAggregationDuration(seconds float64) {}

func (m *Mock) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHitCount++
}

func (m *Mock) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMissCount++
}

func (m *Mock) IncDigestsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DigestsPublished++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailed++
}

func (m *Mock) SetStartupTime(seconds float64) {}
