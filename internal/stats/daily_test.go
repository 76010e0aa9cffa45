package stats_test

import (
	"testing"

	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doubles(court int, a, b, c, d string) session.Match {
	return session.Match{
		GameType: session.GameTypeDoubles,
		Team1:    []string{a, b},
		Team2:    []string{c, d},
		Court:    court,
	}
}

func score(t1, t2 int) *session.MatchResult {
	return &session.MatchResult{T1: &t1, T2: &t2}
}

func TestAggregateDay(t *testing.T) {
	sess := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			doubles(1, "A", "B", "C", "D"),
			doubles(2, "A", "C", "B", "D"),
		},
		Results: []*session.MatchResult{
			score(6, 4),
			score(5, 5),
		},
	}

	summary := stats.AggregateDay(sess, nil)
	require.Len(t, summary.Stats, 4)

	a := summary.Stats["A"]
	require.NotNil(t, a)
	assert.Equal(t, 2, a.Games)
	assert.Equal(t, 1, a.Wins)
	assert.Equal(t, 1, a.Draws)
	assert.Equal(t, 0, a.Losses)
	assert.Equal(t, 4, a.Points)
	assert.Equal(t, 11, a.ScoreFor)
	assert.Equal(t, 9, a.ScoreAgainst)
	assert.InDelta(t, 0.5, a.WinRate, 1e-9)

	d := summary.Stats["D"]
	require.NotNil(t, d)
	assert.Equal(t, 0, d.Wins)
	assert.Equal(t, 1, d.Draws)
	assert.Equal(t, 1, d.Losses)
	assert.Equal(t, 1, d.Points)

	// W+D+L always accounts for every game.
	for name, p := range summary.Stats {
		assert.Equal(t, p.Games, p.Wins+p.Draws+p.Losses, "player %s", name)
	}
}

func TestAggregateDayExcludesGuests(t *testing.T) {
	sess := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			doubles(1, "A", "게스트_1", "C", "D"),
		},
		Results: []*session.MatchResult{
			score(6, 3),
		},
	}

	summary := stats.AggregateDay(sess, nil)

	// The guest never appears, but everyone they played with or against
	// is credited a full game.
	assert.NotContains(t, summary.Stats, "게스트_1")
	require.Contains(t, summary.Stats, "A")
	assert.Equal(t, 1, summary.Stats["A"].Wins)
	require.Contains(t, summary.Stats, "C")
	assert.Equal(t, 1, summary.Stats["C"].Games)
	assert.Equal(t, 1, summary.Stats["C"].Losses)
	require.Contains(t, summary.Stats, "D")
	assert.Equal(t, 1, summary.Stats["D"].Games)
}

func TestAggregateDayMembershipFilter(t *testing.T) {
	sess := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			doubles(1, "A", "B", "C", "Visitor"),
		},
		Results: []*session.MatchResult{
			score(6, 2),
		},
	}

	members := stats.Members{"A": {}, "B": {}, "C": {}}
	summary := stats.AggregateDay(sess, members)

	assert.NotContains(t, summary.Stats, "Visitor")
	assert.Equal(t, 1, summary.Stats["C"].Losses)
}

func TestAggregateDaySkipsDeletedAndIncomplete(t *testing.T) {
	sess := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			{GameType: session.GameTypeDeleted, Team1: []string{"A", "B"}, Team2: []string{"C", "D"}, Court: 1},
			doubles(2, "A", "B", "C", "D"),
		},
		Results: []*session.MatchResult{
			score(6, 0), // voided, must not count or warn
			nil,         // scheduled but never scored
		},
	}

	summary := stats.AggregateDay(sess, nil)
	assert.Empty(t, summary.Stats)
	assert.Empty(t, summary.ShutoutCounts)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "match 2")
	assert.Contains(t, summary.Warnings[0], "no result recorded")
}

func TestAggregateDayWarnsOnNonCanonicalDraw(t *testing.T) {
	sess := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			doubles(1, "A", "B", "C", "D"),
		},
		Results: []*session.MatchResult{
			score(3, 3),
		},
	}

	summary := stats.AggregateDay(sess, nil)

	// The draw still counts; the odd score is only flagged.
	assert.Equal(t, 1, summary.Stats["A"].Draws)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "draw recorded at 3-3")
}

func TestAggregateDaySpecialSession(t *testing.T) {
	sess := &session.Session{
		Date:    "2026-03-07",
		Special: true,
		Schedule: []session.Match{
			doubles(1, "A", "B", "C", "D"),
		},
		Results: []*session.MatchResult{
			score(6, 1),
		},
	}

	summary := stats.AggregateDay(sess, nil)
	assert.True(t, summary.Special)
	assert.Empty(t, summary.Stats)
	assert.Empty(t, summary.MVP)
	assert.Empty(t, summary.Warnings)
}

func TestMVPDeterministicTieBreak(t *testing.T) {
	// A and B both win twice; A's differential is larger.
	sess := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			doubles(1, "A", "C", "E", "F"),
			doubles(2, "A", "D", "E", "F"),
			doubles(3, "B", "C", "E", "F"),
			doubles(4, "B", "D", "E", "F"),
		},
		Results: []*session.MatchResult{
			score(6, 1),
			score(6, 2),
			score(6, 3),
			score(6, 4),
		},
	}

	summary := stats.AggregateDay(sess, nil)
	assert.Equal(t, "A", summary.MVP)

	// With identical wins and differential the lexicographically smaller
	// name is picked, so repeated runs agree.
	tie := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			doubles(1, "B", "C", "E", "F"),
			doubles(2, "A", "D", "E", "F"),
		},
		Results: []*session.MatchResult{
			score(6, 2),
			score(6, 2),
		},
	}
	for i := 0; i < 10; i++ {
		assert.Equal(t, "A", stats.AggregateDay(tie, nil).MVP)
	}
}

func TestUndefeatedAndShutouts(t *testing.T) {
	sess := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			doubles(1, "A", "B", "C", "D"),
			doubles(2, "A", "C", "B", "D"),
		},
		Results: []*session.MatchResult{
			score(6, 0),
			score(5, 5),
		},
	}

	summary := stats.AggregateDay(sess, nil)
	assert.Equal(t, []string{"A", "B"}, summary.Undefeated)
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, summary.ShutoutCounts)
	assert.Equal(t, []string{"A", "B"}, summary.ShutoutLeaders)
}
