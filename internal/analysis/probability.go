package analysis

import (
	"sort"
	"strings"

	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

const (
	// probabilityFloor keeps a displayed likelihood from implying a
	// deterministic outcome.
	probabilityFloor = 10.0
	// minProbabilitySample is the number of prior meetings between the two
	// exact rosters required before a number is reported at all.
	minProbabilitySample = 2
)

// Probability is the heuristic win-likelihood estimate for a prospective
// pairing. The two sides are independently derived historical rates and are
// not required to sum to 100. When HasEnoughData is false no percentage is
// populated and callers must render a placeholder instead.
type Probability struct {
	HasEnoughData bool    `json:"hasEnoughData"`
	SampleSize    int     `json:"sampleSize"`
	Team1         float64 `json:"team1,omitempty"`
	Team2         float64 `json:"team2,omitempty"`
}

// MatchProbability estimates each side's win likelihood from the historical
// record of these two exact rosters against each other. Roster matching is
// order-insensitive; a past match with the sides swapped still counts, with
// the outcome flipped accordingly.
func MatchProbability(sessions map[string]session.Session, team1, team2 []string) Probability {
	key1, key2 := rosterKey(team1), rosterKey(team2)
	if key1 == "" || key2 == "" || key1 == key2 {
		return Probability{}
	}

	var games, wins1, wins2 int
	for _, sess := range sessions {
		if sess.Special {
			continue
		}
		for i := range sess.Schedule {
			m := &sess.Schedule[i]
			r := sess.ResultFor(i)
			if !m.Counted() || !r.Complete() {
				continue
			}
			ka, kb := rosterKey(m.Team1), rosterKey(m.Team2)
			outcome := stats.Classify(r.T1, r.T2)
			switch {
			case ka == key1 && kb == key2:
			case ka == key2 && kb == key1:
				outcome = outcome.Invert()
			default:
				continue
			}
			games++
			switch outcome {
			case stats.OutcomeWin:
				wins1++
			case stats.OutcomeLoss:
				wins2++
			}
		}
	}

	if games < minProbabilitySample {
		return Probability{SampleSize: games}
	}
	return Probability{
		HasEnoughData: true,
		SampleSize:    games,
		Team1:         clampProbability(100 * float64(wins1) / float64(games)),
		Team2:         clampProbability(100 * float64(wins2) / float64(games)),
	}
}

func clampProbability(p float64) float64 {
	if p < probabilityFloor {
		return probabilityFloor
	}
	return p
}

// rosterKey is an order-insensitive identity for a team roster. Empty names
// make the roster unidentifiable.
func rosterKey(team []string) string {
	if len(team) == 0 {
		return ""
	}
	names := append([]string(nil), team...)
	for _, n := range names {
		if n == "" {
			return ""
		}
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}
