package analysis_test

import (
	"testing"

	"github.com/minsuk-hwang/courtmate/internal/analysis"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchProbability(t *testing.T) {
	sessions := oneDay("2026-03-07",
		[]session.Match{
			doubles(1, "A", "B", "C", "D"),
			doubles(2, "A", "B", "C", "D"),
			doubles(3, "C", "D", "A", "B"), // sides swapped, still the same pairing
			doubles(4, "A", "B", "C", "D"),
		},
		[]*session.MatchResult{
			score(6, 2), // A/B win
			score(6, 3), // A/B win
			score(6, 4), // C/D win
			score(5, 5), // draw
		},
	)

	p := analysis.MatchProbability(sessions, []string{"A", "B"}, []string{"C", "D"})
	require.True(t, p.HasEnoughData)
	assert.Equal(t, 4, p.SampleSize)
	assert.InDelta(t, 50.0, p.Team1, 1e-9)
	assert.InDelta(t, 25.0, p.Team2, 1e-9)
}

func TestMatchProbabilityOrderInsensitive(t *testing.T) {
	sessions := oneDay("2026-03-07",
		[]session.Match{
			doubles(1, "A", "B", "C", "D"),
			doubles(2, "A", "B", "C", "D"),
		},
		[]*session.MatchResult{
			score(6, 2),
			score(6, 3),
		},
	)

	p := analysis.MatchProbability(sessions, []string{"B", "A"}, []string{"D", "C"})
	require.True(t, p.HasEnoughData)
	assert.Equal(t, 2, p.SampleSize)
}

// With no history between the rosters the estimator must refuse to guess.
func TestMatchProbabilityNoHistory(t *testing.T) {
	p := analysis.MatchProbability(map[string]session.Session{}, []string{"A", "B"}, []string{"C", "D"})
	assert.False(t, p.HasEnoughData)
	assert.Zero(t, p.SampleSize)
	assert.Zero(t, p.Team1)
	assert.Zero(t, p.Team2)
}

func TestMatchProbabilitySingleMeeting(t *testing.T) {
	sessions := oneDay("2026-03-07",
		[]session.Match{doubles(1, "A", "B", "C", "D")},
		[]*session.MatchResult{score(6, 0)},
	)

	p := analysis.MatchProbability(sessions, []string{"A", "B"}, []string{"C", "D"})
	assert.False(t, p.HasEnoughData)
	assert.Equal(t, 1, p.SampleSize)
}

// A one-sided history never displays below the 10% floor.
func TestMatchProbabilityFloor(t *testing.T) {
	sessions := oneDay("2026-03-07",
		[]session.Match{
			doubles(1, "A", "B", "C", "D"),
			doubles(2, "A", "B", "C", "D"),
			doubles(3, "A", "B", "C", "D"),
		},
		[]*session.MatchResult{
			score(6, 0),
			score(6, 1),
			score(6, 2),
		},
	)

	p := analysis.MatchProbability(sessions, []string{"A", "B"}, []string{"C", "D"})
	require.True(t, p.HasEnoughData)
	assert.InDelta(t, 100.0, p.Team1, 1e-9)
	assert.InDelta(t, 10.0, p.Team2, 1e-9)
}

func TestMatchProbabilityDegenerateRosters(t *testing.T) {
	sessions := map[string]session.Session{}

	assert.Zero(t, analysis.MatchProbability(sessions, nil, []string{"C", "D"}))
	assert.Zero(t, analysis.MatchProbability(sessions, []string{"A", ""}, []string{"C", "D"}))
	assert.Zero(t, analysis.MatchProbability(sessions, []string{"A", "B"}, []string{"B", "A"}))
}
