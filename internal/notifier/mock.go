package notifier

import (
	"sync"

	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// Mock records sent notifications for assertions in tests.
type Mock struct {
	mu sync.Mutex

	DailySummaries []*stats.DaySummary
	Leaderboards   [][]stats.Ranked

	SendDailySummaryFunc func(summary *stats.DaySummary, dryRun bool) error
	SendLeaderboardFunc  func(rows []stats.Ranked, period string, dryRun bool) error
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendDailySummary(summary *stats.DaySummary, dryRun bool) error {
	m.mu.Lock()
	m.DailySummaries = append(m.DailySummaries, summary)
	m.mu.Unlock()
	if m.SendDailySummaryFunc != nil {
		return m.SendDailySummaryFunc(summary, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboard(rows []stats.Ranked, period string, dryRun bool) error {
	m.mu.Lock()
	m.Leaderboards = append(m.Leaderboards, rows)
	m.mu.Unlock()
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(rows, period, dryRun)
	}
	return nil
}
