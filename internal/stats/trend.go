package stats

import (
	"sort"

	"github.com/minsuk-hwang/courtmate/internal/session"
)

// TrendPoint is one month of a player's form series.
type TrendPoint struct {
	Month   string  `json:"month"`
	Games   int     `json:"games"`
	WinRate float64 `json:"winRate"`
}

// MonthlyTrend buckets the supplied sessions by their date's YYYY-MM prefix
// and re-runs the cross-session aggregate once per bucket, returning a
// chronological series for one player. maxMonths bounds the lookback to the
// most recent buckets; zero means no bound. Months in which the player did not
// play still appear with zero games when sessions exist for them.
func MonthlyTrend(sessions map[string]session.Session, player string, members Members, maxMonths int) []TrendPoint {
	buckets := make(map[string]map[string]session.Session)
	for date, sess := range sessions {
		if len(date) < 7 {
			continue
		}
		month := date[:7]
		if buckets[month] == nil {
			buckets[month] = make(map[string]session.Session)
		}
		buckets[month][date] = sess
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)
	if maxMonths > 0 && len(months) > maxMonths {
		months = months[len(months)-maxMonths:]
	}

	series := make([]TrendPoint, 0, len(months))
	for _, month := range months {
		summary := AggregatePeriod(buckets[month], members)
		point := TrendPoint{Month: month}
		if p, ok := summary.Stats[player]; ok {
			point.Games = p.Games
			point.WinRate = p.WinRate
		}
		series = append(series, point)
	}
	return series
}
