package stats

import (
	"sort"

	"github.com/minsuk-hwang/courtmate/internal/session"
)

// Superlative names a period's record holder together with the figure that
// earned it.
type Superlative struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PeriodBests are the "best of the period" superlatives derived from the
// cross-session aggregate.
type PeriodBests struct {
	MVP            *Superlative `json:"mvp,omitempty"`
	ScoreDiffKing  *Superlative `json:"scoreDiffKing,omitempty"`
	Peacemaker     *Superlative `json:"peacemaker,omitempty"`
	FriendshipKing *Superlative `json:"friendshipKing,omitempty"`
	StreakKing     *Superlative `json:"streakKing,omitempty"`
	BakeryKing     *Superlative `json:"bakeryKing,omitempty"`
}

// PeriodSummary is the Cross-Session Aggregator output for a set of sessions.
type PeriodSummary struct {
	Stats      map[string]*PlayerStats `json:"stats"`
	Attendance map[string]int          `json:"attendance"`
	Bests      PeriodBests             `json:"bests"`
}

// AggregatePeriod folds every non-deleted, fully-scored match across every
// non-exhibition session into cumulative PlayerStats, attendance counts and
// period superlatives. The caller is responsible for filtering the session map
// to the target period; this function imposes no date window of its own.
func AggregatePeriod(sessions map[string]session.Session, members Members) *PeriodSummary {
	summary := &PeriodSummary{
		Stats:      make(map[string]*PlayerStats),
		Attendance: make(map[string]int),
	}

	dates := sortedDates(sessions)
	shutouts := make(map[string]int)
	partners := make(map[string]map[string]struct{})
	streaks := make(map[string]int)
	bestStreaks := make(map[string]int)

	for _, date := range dates {
		sess := sessions[date]
		if sess.Special {
			continue
		}
		attended := make(map[string]struct{})
		for i := range sess.Schedule {
			m := &sess.Schedule[i]
			r := sess.ResultFor(i)
			if !m.Counted() || !r.Complete() {
				continue
			}
			credit(summary.Stats, m, r, members)
			for _, name := range m.Players() {
				if counts(name, members) {
					attended[name] = struct{}{}
				}
			}
			for _, name := range shutout(m, r) {
				if counts(name, members) {
					shutouts[name]++
				}
			}
			trackPartners(partners, m.Team1, members)
			trackPartners(partners, m.Team2, members)
			trackStreaks(streaks, bestStreaks, m, r, members)
		}
		for name := range attended {
			summary.Attendance[name]++
		}
	}
	finalize(summary.Stats)

	summary.Bests = deriveBests(summary.Stats, summary.Attendance, shutouts, partners, bestStreaks)
	return summary
}

func sortedDates(sessions map[string]session.Session) []string {
	dates := make([]string, 0, len(sessions))
	for date := range sessions {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func trackPartners(partners map[string]map[string]struct{}, team []string, members Members) {
	if len(team) < 2 {
		return
	}
	for _, name := range team {
		if !counts(name, members) {
			continue
		}
		for _, mate := range team {
			if mate == name || mate == "" || session.IsGuestName(mate) {
				continue
			}
			if partners[name] == nil {
				partners[name] = make(map[string]struct{})
			}
			partners[name][mate] = struct{}{}
		}
	}
}

// trackStreaks extends or resets each participant's running win streak. Draws
// and losses both end a run; matches a player sat out do not.
func trackStreaks(streaks, best map[string]int, m *session.Match, r *session.MatchResult, members Members) {
	outcome := Classify(r.T1, r.T2)
	apply := func(team []string, o Outcome) {
		for _, name := range team {
			if !counts(name, members) {
				continue
			}
			if o == OutcomeWin {
				streaks[name]++
				if streaks[name] > best[name] {
					best[name] = streaks[name]
				}
			} else {
				streaks[name] = 0
			}
		}
	}
	apply(m.Team1, outcome)
	apply(m.Team2, outcome.Invert())
}

func deriveBests(stats map[string]*PlayerStats, attendance, shutouts map[string]int, partners map[string]map[string]struct{}, streaks map[string]int) PeriodBests {
	bests := PeriodBests{}

	// Period MVP: wins, then score differential, then attendance days, then name.
	var mvp *PlayerStats
	for _, p := range stats {
		if p.Games == 0 {
			continue
		}
		if mvp == nil || periodMVPLess(mvp, p, attendance) {
			mvp = p
		}
	}
	if mvp != nil {
		bests.MVP = &Superlative{Name: mvp.Name, Value: float64(mvp.Wins)}
	}

	bests.ScoreDiffKing = maxBy(stats, func(p *PlayerStats) (float64, bool) {
		if p.Games == 0 {
			return 0, false
		}
		return float64(p.ScoreDiff()) / float64(p.Games), true
	})
	bests.Peacemaker = maxBy(stats, func(p *PlayerStats) (float64, bool) {
		return float64(p.Draws), p.Draws > 0
	})

	bests.FriendshipKing = maxCount(distinctCounts(partners))
	bests.StreakKing = maxCount(streaks)
	bests.BakeryKing = maxCount(shutouts)
	return bests
}

func periodMVPLess(a, b *PlayerStats, attendance map[string]int) bool {
	if b.Wins != a.Wins {
		return b.Wins > a.Wins
	}
	if b.ScoreDiff() != a.ScoreDiff() {
		return b.ScoreDiff() > a.ScoreDiff()
	}
	if attendance[b.Name] != attendance[a.Name] {
		return attendance[b.Name] > attendance[a.Name]
	}
	return b.Name < a.Name
}

// maxBy returns the stats entry maximizing the keyed value, breaking ties by
// name ascending. Entries for which the key is not applicable are skipped.
func maxBy(stats map[string]*PlayerStats, key func(*PlayerStats) (float64, bool)) *Superlative {
	var best *Superlative
	for _, p := range stats {
		v, ok := key(p)
		if !ok {
			continue
		}
		if best == nil || v > best.Value || (v == best.Value && p.Name < best.Name) {
			best = &Superlative{Name: p.Name, Value: v}
		}
	}
	return best
}

func distinctCounts(sets map[string]map[string]struct{}) map[string]int {
	out := make(map[string]int, len(sets))
	for name, set := range sets {
		out[name] = len(set)
	}
	return out
}

func maxCount(values map[string]int) *Superlative {
	var best *Superlative
	for name, v := range values {
		if v == 0 {
			continue
		}
		fv := float64(v)
		if best == nil || fv > best.Value || (fv == best.Value && name < best.Name) {
			best = &Superlative{Name: name, Value: fv}
		}
	}
	return best
}
