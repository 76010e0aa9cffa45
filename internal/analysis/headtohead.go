package analysis

import (
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// PairRecord is a head-to-head bucket from player A's perspective.
type PairRecord struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Draws   int     `json:"draws"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

// HeadToHead is the full history between exactly two named players: matches
// where they shared a side and matches where they faced each other.
type HeadToHead struct {
	A           string     `json:"a"`
	B           string     `json:"b"`
	AsPartners  PairRecord `json:"asPartners"`
	AsOpponents PairRecord `json:"asOpponents"`
}

// HeadToHeadOptions bound each bucket to the most recent N qualifying
// matches. Recency is session-date order; when dates tie, schedule order
// within the day stands in for true match order, which is accepted.
type HeadToHeadOptions struct {
	LimitPartner  int
	LimitOpponent int
}

// GetHeadToHead builds both buckets between a and b across the session map.
// Wins are counted from a's perspective, so a's opponent wins equal b's
// opponent losses over the same matches.
func GetHeadToHead(sessions map[string]session.Session, a, b string, opts HeadToHeadOptions) HeadToHead {
	h2h := HeadToHead{A: a, B: b}
	var partnerOutcomes, opponentOutcomes []stats.Outcome
	for _, p := range focalPairings(sessions, a) {
		switch {
		case contains(p.teammates, b):
			partnerOutcomes = append(partnerOutcomes, p.outcome)
		case contains(p.opponents, b):
			opponentOutcomes = append(opponentOutcomes, p.outcome)
		}
	}
	h2h.AsPartners = buildPair(partnerOutcomes, opts.LimitPartner)
	h2h.AsOpponents = buildPair(opponentOutcomes, opts.LimitOpponent)
	return h2h
}

// buildPair folds outcomes (already most-recent-first) into a PairRecord,
// keeping only the newest limit entries when a limit is set.
func buildPair(outcomes []stats.Outcome, limit int) PairRecord {
	if limit > 0 && len(outcomes) > limit {
		outcomes = outcomes[:limit]
	}
	var rec PairRecord
	for _, o := range outcomes {
		rec.Games++
		switch o {
		case stats.OutcomeWin:
			rec.Wins++
		case stats.OutcomeDraw:
			rec.Draws++
		case stats.OutcomeLoss:
			rec.Losses++
		}
	}
	rec.WinRate = winRate(rec.Wins, rec.Games)
	return rec
}
