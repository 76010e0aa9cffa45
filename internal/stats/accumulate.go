package stats

import (
	"github.com/minsuk-hwang/courtmate/internal/session"
)

// counts reports whether a participant name accrues stats: guests never do,
// and when a membership set is supplied only recognized members do.
func counts(name string, members Members) bool {
	return !session.IsGuestName(name) && members.Contains(name)
}

// credit folds one fully-scored, non-deleted match into the stats map. Both
// teams are credited symmetrically; excluded names are skipped but their
// opponents still accrue a normal game.
func credit(stats map[string]*PlayerStats, m *session.Match, r *session.MatchResult, members Members) {
	if !m.Counted() || !r.Complete() {
		return
	}
	outcome := Classify(r.T1, r.T2)
	creditTeam(stats, m.Team1, outcome, *r.T1, *r.T2, members)
	creditTeam(stats, m.Team2, outcome.Invert(), *r.T2, *r.T1, members)
}

func creditTeam(stats map[string]*PlayerStats, team []string, outcome Outcome, scoreFor, scoreAgainst int, members Members) {
	for _, name := range team {
		if name == "" || !counts(name, members) {
			continue
		}
		p, ok := stats[name]
		if !ok {
			p = &PlayerStats{Name: name}
			stats[name] = p
		}
		p.Games++
		switch outcome {
		case OutcomeWin:
			p.Wins++
		case OutcomeDraw:
			p.Draws++
		case OutcomeLoss:
			p.Losses++
		}
		p.Points += Points(outcome)
		p.ScoreFor += scoreFor
		p.ScoreAgainst += scoreAgainst
	}
}

// shutout reports the winning team's names when the losing side scored zero,
// or nil for any other result.
func shutout(m *session.Match, r *session.MatchResult) []string {
	if !m.Counted() || !r.Complete() {
		return nil
	}
	switch Classify(r.T1, r.T2) {
	case OutcomeWin:
		if *r.T2 == 0 {
			return m.Team1
		}
	case OutcomeLoss:
		if *r.T1 == 0 {
			return m.Team2
		}
	}
	return nil
}
