package analysis_test

import (
	"testing"

	"github.com/minsuk-hwang/courtmate/internal/analysis"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func attrRoster() map[string]session.Player {
	return map[string]session.Player{
		"A": {Name: "A", Gender: "M", Hand: "R", NTRP: floatPtr(3.5), Member: true},
		"B": {Name: "B", Gender: "F", Hand: "L", NTRP: floatPtr(2.5), MBTI: strPtr("ENTP"), Member: true},
		"C": {Name: "C", Gender: "M", Hand: "R", NTRP: floatPtr(4.0), Member: true},
		"D": {Name: "D", Gender: "F", Member: true},
	}
}

func attrSessions() map[string]session.Session {
	return oneDay("2026-03-07",
		[]session.Match{
			doubles(1, "A", "X", "B", "C"), // A beats B(F) and C(M)
			doubles(2, "A", "X", "C", "D"), // A loses to C(M) and D(F)
		},
		[]*session.MatchResult{
			score(6, 2),
			score(2, 6),
		},
	)
}

func TestGroupByGender(t *testing.T) {
	records := analysis.GroupByAttribute(attrSessions(), "A", attrRoster(), analysis.AttrGender)
	require.Len(t, records, 2)

	byGroup := make(map[string]analysis.GroupRecord)
	for _, r := range records {
		byGroup[r.Group] = r
	}

	m := byGroup["M"]
	assert.Equal(t, 2, m.Games)
	assert.Equal(t, 1, m.Wins)
	assert.Equal(t, 1, m.Losses)
	assert.InDelta(t, 0.5, m.WinRate, 1e-9)

	f := byGroup["F"]
	assert.Equal(t, 2, f.Games)
	assert.Equal(t, 1, f.Wins)
}

func TestGroupByNTRPBands(t *testing.T) {
	records := analysis.GroupByAttribute(attrSessions(), "A", attrRoster(), analysis.AttrNTRP)

	byGroup := make(map[string]analysis.GroupRecord)
	for _, r := range records {
		byGroup[r.Group] = r
	}

	assert.Equal(t, 2, byGroup["4.0+"].Games)   // C, twice
	assert.Equal(t, 1, byGroup["<3.0"].Games)   // B
	assert.Equal(t, 1, byGroup["unrated"].Games) // D has no rating
}

func TestGroupByMBTIUnknownFallback(t *testing.T) {
	records := analysis.GroupByAttribute(attrSessions(), "A", attrRoster(), analysis.AttrMBTI)

	byGroup := make(map[string]analysis.GroupRecord)
	for _, r := range records {
		byGroup[r.Group] = r
	}

	assert.Equal(t, 1, byGroup["ENTP"].Games)
	// C and D have no MBTI on file.
	assert.Equal(t, 3, byGroup["unknown"].Games)
}

func TestGroupSkipsGuestsAndUnrostered(t *testing.T) {
	roster := attrRoster()
	guest := session.Player{Name: "손님", Guest: true}
	roster["손님"] = guest

	sessions := oneDay("2026-03-07",
		[]session.Match{
			doubles(1, "A", "X", "손님", "게스트_1"),
			doubles(2, "A", "X", "Stranger", "B"),
		},
		[]*session.MatchResult{
			score(6, 1),
			score(6, 2),
		},
	)

	records := analysis.GroupByAttribute(sessions, "A", roster, analysis.AttrGender)

	byGroup := make(map[string]analysis.GroupRecord)
	for _, r := range records {
		byGroup[r.Group] = r
	}

	// Both guests vanish; the unrostered stranger lands in "unknown".
	assert.NotContains(t, byGroup, "M")
	assert.Equal(t, 1, byGroup["unknown"].Games)
	assert.Equal(t, 1, byGroup["F"].Games)
}

func TestParseAttribute(t *testing.T) {
	assert.Equal(t, analysis.AttrNTRP, analysis.ParseAttribute("ntrp"))
	assert.Equal(t, analysis.AttrGender, analysis.ParseAttribute(""))
	assert.Equal(t, analysis.AttrGender, analysis.ParseAttribute("shoe-size"))
}
