package stats

import (
	"fmt"
	"sort"

	"github.com/minsuk-hwang/courtmate/internal/session"
)

// DaySummary is the Daily Aggregator output: per-player stats scoped to a
// single session plus the derived same-day highlights.
type DaySummary struct {
	Date           string                  `json:"date"`
	Special        bool                    `json:"special,omitempty"`
	Stats          map[string]*PlayerStats `json:"stats"`
	MVP            string                  `json:"mvp,omitempty"`
	Undefeated     []string                `json:"undefeated,omitempty"`
	ShutoutCounts  map[string]int          `json:"shutoutCounts,omitempty"`
	ShutoutLeaders []string                `json:"shutoutLeaders,omitempty"`
	// Warnings are data-quality lints for manual correction, never errors.
	Warnings []string `json:"warnings,omitempty"`
}

// AggregateDay folds one session's matches into per-player same-day stats and
// highlights. Exhibition sessions yield an empty summary with the flag echoed
// so callers can render "doesn't count" rather than zeros.
func AggregateDay(sess *session.Session, members Members) *DaySummary {
	summary := &DaySummary{
		Date:          sess.Date,
		Special:       sess.Special,
		Stats:         make(map[string]*PlayerStats),
		ShutoutCounts: make(map[string]int),
	}
	if sess.Special {
		return summary
	}

	for i := range sess.Schedule {
		m := &sess.Schedule[i]
		r := sess.ResultFor(i)
		if m.Counted() && !r.Complete() {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("match %d (court %d): no result recorded", i+1, m.Court))
			continue
		}
		credit(summary.Stats, m, r, members)
		if m.Counted() && r.Complete() && Classify(r.T1, r.T2) == OutcomeDraw && *r.T1 != CanonicalDrawScore {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("match %d (court %d): draw recorded at %d-%d, expected %d-%d",
					i+1, m.Court, *r.T1, *r.T2, CanonicalDrawScore, CanonicalDrawScore))
		}
		for _, name := range shutout(m, r) {
			if counts(name, members) {
				summary.ShutoutCounts[name]++
			}
		}
	}
	finalize(summary.Stats)

	summary.MVP = selectMVP(summary.Stats)
	summary.Undefeated = undefeated(summary.Stats)
	summary.ShutoutLeaders = shutoutLeaders(summary.ShutoutCounts)
	return summary
}

// selectMVP picks the player with the most wins; ties break on score
// differential, then lexicographically by name so the pick is deterministic.
func selectMVP(stats map[string]*PlayerStats) string {
	var best *PlayerStats
	for _, p := range stats {
		if p.Games == 0 {
			continue
		}
		if best == nil || mvpLess(best, p) {
			best = p
		}
	}
	if best == nil {
		return ""
	}
	return best.Name
}

// mvpLess reports whether b outranks a for MVP purposes.
func mvpLess(a, b *PlayerStats) bool {
	if b.Wins != a.Wins {
		return b.Wins > a.Wins
	}
	if b.ScoreDiff() != a.ScoreDiff() {
		return b.ScoreDiff() > a.ScoreDiff()
	}
	return b.Name < a.Name
}

func undefeated(stats map[string]*PlayerStats) []string {
	var names []string
	for _, p := range stats {
		if p.Games > 0 && p.Losses == 0 {
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	return names
}

// shutoutLeaders returns every player tied at the day's maximum shutout count.
func shutoutLeaders(shutouts map[string]int) []string {
	max := 0
	for _, n := range shutouts {
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return nil
	}
	var leaders []string
	for name, n := range shutouts {
		if n == max {
			leaders = append(leaders, name)
		}
	}
	sort.Strings(leaders)
	return leaders
}
