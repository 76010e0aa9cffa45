package notifier

import "github.com/minsuk-hwang/courtmate/internal/stats"

// Notifier sends engine output to the club's channel.
type Notifier interface {
	SendDailySummary(summary *stats.DaySummary, dryRun bool) error
	SendLeaderboard(rows []stats.Ranked, period string, dryRun bool) error
}
