package analysis_test

import (
	"testing"

	"github.com/minsuk-hwang/courtmate/internal/analysis"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func h2hFixture() map[string]session.Session {
	return map[string]session.Session{
		"2026-03-07": {
			Date: "2026-03-07",
			Schedule: []session.Match{
				doubles(1, "A", "B", "C", "D"), // partners, win
				doubles(2, "A", "C", "B", "D"), // opponents, A wins
			},
			Results: []*session.MatchResult{
				score(6, 2),
				score(6, 4),
			},
		},
		"2026-03-14": {
			Date: "2026-03-14",
			Schedule: []session.Match{
				doubles(1, "B", "C", "A", "D"), // opponents, B wins
				doubles(2, "A", "B", "C", "D"), // partners, draw
			},
			Results: []*session.MatchResult{
				score(6, 3),
				score(5, 5),
			},
		},
	}
}

func TestGetHeadToHead(t *testing.T) {
	h2h := analysis.GetHeadToHead(h2hFixture(), "A", "B", analysis.HeadToHeadOptions{})

	assert.Equal(t, "A", h2h.A)
	assert.Equal(t, "B", h2h.B)

	assert.Equal(t, 2, h2h.AsPartners.Games)
	assert.Equal(t, 1, h2h.AsPartners.Wins)
	assert.Equal(t, 1, h2h.AsPartners.Draws)

	assert.Equal(t, 2, h2h.AsOpponents.Games)
	assert.Equal(t, 1, h2h.AsOpponents.Wins)
	assert.Equal(t, 1, h2h.AsOpponents.Losses)
	assert.InDelta(t, 0.5, h2h.AsOpponents.WinRate, 1e-9)
}

// Swapping the two players must mirror the record exactly: A's wins against B
// are B's losses against A over the same matches.
func TestHeadToHeadSymmetry(t *testing.T) {
	sessions := h2hFixture()

	ab := analysis.GetHeadToHead(sessions, "A", "B", analysis.HeadToHeadOptions{})
	ba := analysis.GetHeadToHead(sessions, "B", "A", analysis.HeadToHeadOptions{})

	assert.Equal(t, ab.AsOpponents.Games, ba.AsOpponents.Games)
	assert.Equal(t, ab.AsOpponents.Wins, ba.AsOpponents.Losses)
	assert.Equal(t, ab.AsOpponents.Losses, ba.AsOpponents.Wins)
	assert.Equal(t, ab.AsOpponents.Draws, ba.AsOpponents.Draws)

	// The partner bucket is perspective-free.
	assert.Equal(t, ab.AsPartners, ba.AsPartners)
}

func TestHeadToHeadRecencyLimit(t *testing.T) {
	sessions := h2hFixture()

	// Only the most recent opponent meeting (2026-03-14, B's win) counts.
	h2h := analysis.GetHeadToHead(sessions, "A", "B", analysis.HeadToHeadOptions{LimitOpponent: 1})
	require.Equal(t, 1, h2h.AsOpponents.Games)
	assert.Equal(t, 0, h2h.AsOpponents.Wins)
	assert.Equal(t, 1, h2h.AsOpponents.Losses)

	// The partner bucket keeps its full history.
	assert.Equal(t, 2, h2h.AsPartners.Games)
}

func TestHeadToHeadNoHistory(t *testing.T) {
	h2h := analysis.GetHeadToHead(h2hFixture(), "A", "Z", analysis.HeadToHeadOptions{})
	assert.Zero(t, h2h.AsPartners.Games)
	assert.Zero(t, h2h.AsOpponents.Games)
	assert.Zero(t, h2h.AsOpponents.WinRate)
}
