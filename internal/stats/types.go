package stats

// PlayerStats is the derived per-player summary. It is always recomputed from
// the session log and never persisted; wins+draws+losses == games holds for
// every aggregate this package produces.
type PlayerStats struct {
	Name         string  `json:"name"`
	Games        int     `json:"games"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	Points       int     `json:"points"`
	ScoreFor     int     `json:"scoreFor"`
	ScoreAgainst int     `json:"scoreAgainst"`
	WinRate      float64 `json:"winRate"`
}

// ScoreDiff is the cumulative score differential.
func (p *PlayerStats) ScoreDiff() int {
	return p.ScoreFor - p.ScoreAgainst
}

// Members is the set of recognized club members. A nil set means "no
// membership filter": every non-guest participant counts.
type Members map[string]struct{}

// Contains reports whether name passes the membership filter.
func (m Members) Contains(name string) bool {
	if m == nil {
		return true
	}
	_, ok := m[name]
	return ok
}

func finalize(stats map[string]*PlayerStats) {
	for _, p := range stats {
		if p.Games > 0 {
			p.WinRate = float64(p.Wins) / float64(p.Games)
		} else {
			p.WinRate = 0
		}
	}
}
