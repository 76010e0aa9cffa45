package stats

import "sort"

// Criterion selects the primary ranking key.
type Criterion string

const (
	ByPoints     Criterion = "points"
	ByWinRate    Criterion = "winRate"
	ByScoreTotal Criterion = "scoreTotal"
	ByScoreAvg   Criterion = "scoreAvg"
	ByAttendance Criterion = "attendance"
	ByScoreDiff  Criterion = "scoreDiff"
)

// ParseCriterion maps a query value to a Criterion, defaulting to points.
func ParseCriterion(s string) Criterion {
	switch Criterion(s) {
	case ByWinRate, ByScoreTotal, ByScoreAvg, ByAttendance, ByScoreDiff:
		return Criterion(s)
	default:
		return ByPoints
	}
}

// Ranked is one leaderboard row.
type Ranked struct {
	PlayerStats
	Attendance int `json:"attendance"`
	Rank       int `json:"rank"`
}

// Rank total-orders a PlayerStats collection by the criterion, descending.
// Points-family criteria tie-break on win rate then games; every criterion
// falls through to games then name ascending, so equal primary keys always
// produce the same order and leaderboards render stably across renders and
// rank-change comparisons.
func Rank(stats map[string]*PlayerStats, attendance map[string]int, by Criterion) []Ranked {
	rows := make([]Ranked, 0, len(stats))
	for _, p := range stats {
		rows = append(rows, Ranked{PlayerStats: *p, Attendance: attendance[p.Name]})
	}

	key := rankKey(by)
	sort.Slice(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if ka, kb := key(a), key(b); ka != kb {
			return ka > kb
		}
		if by == ByPoints && a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.Games != b.Games {
			return a.Games > b.Games
		}
		return a.Name < b.Name
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func rankKey(by Criterion) func(*Ranked) float64 {
	switch by {
	case ByWinRate:
		return func(r *Ranked) float64 { return r.WinRate }
	case ByScoreTotal:
		return func(r *Ranked) float64 { return float64(r.ScoreFor) }
	case ByScoreAvg:
		return func(r *Ranked) float64 {
			if r.Games == 0 {
				return 0
			}
			return float64(r.ScoreFor) / float64(r.Games)
		}
	case ByAttendance:
		return func(r *Ranked) float64 { return float64(r.Attendance) }
	case ByScoreDiff:
		return func(r *Ranked) float64 { return float64(r.ScoreDiff()) }
	default:
		return func(r *Ranked) float64 { return float64(r.Points) }
	}
}
