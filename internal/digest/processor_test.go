package digest_test

import (
	"errors"
	"testing"

	"github.com/minsuk-hwang/courtmate/internal/club"
	"github.com/minsuk-hwang/courtmate/internal/digest"
	"github.com/minsuk-hwang/courtmate/internal/metrics"
	"github.com/minsuk-hwang/courtmate/internal/notifier"
	"github.com/minsuk-hwang/courtmate/internal/pubsub"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClubID = "test-club"

func intPtr(v int) *int { return &v }

func completeSession(date string) *session.Session {
	return &session.Session{
		Date: date,
		Schedule: []session.Match{
			{GameType: session.GameTypeDoubles, Team1: []string{"A", "B"}, Team2: []string{"C", "D"}, Court: 1},
		},
		Results: []*session.MatchResult{
			{T1: intPtr(6), T2: intPtr(2)},
		},
	}
}

func newProcessor(store *club.MockStore) (*digest.Processor, *notifier.Mock, *pubsub.MockClient, *metrics.Mock) {
	notif := notifier.NewMock()
	ps := pubsub.NewMock("test-project")
	m := metrics.NewMock()
	return digest.New(store, notif, m, ps, testClubID), notif, ps, m
}

func TestProcessPendingPublishesCompleteSessions(t *testing.T) {
	store := club.NewMock()
	store.GetPendingDigestSessionsFunc = func(clubID string) ([]*session.Session, error) {
		return []*session.Session{completeSession("2026-03-07")}, nil
	}

	proc, notif, ps, m := newProcessor(store)
	proc.ProcessPending(false)

	require.Len(t, ps.Sent, 1)
	assert.Equal(t, pubsub.EventSessionDigest, ps.Sent[0].Topic)
	summary, ok := ps.Sent[0].Data.(*stats.DaySummary)
	require.True(t, ok)
	assert.Equal(t, "2026-03-07", summary.Date)

	require.Len(t, notif.DailySummaries, 1)
	assert.Equal(t, []string{"2026-03-07"}, store.MarkDigestSentCalls)
	assert.Equal(t, 1, m.Aggregations)
	assert.Equal(t, 1, m.DigestsPublished)
}

func TestProcessPendingLeavesIncompleteSessions(t *testing.T) {
	incomplete := completeSession("2026-03-07")
	incomplete.Results[0] = nil

	store := club.NewMock()
	store.GetPendingDigestSessionsFunc = func(clubID string) ([]*session.Session, error) {
		return []*session.Session{incomplete}, nil
	}

	proc, notif, ps, _ := newProcessor(store)
	proc.ProcessPending(false)

	assert.Empty(t, ps.Sent)
	assert.Empty(t, notif.DailySummaries)
	assert.Empty(t, store.MarkDigestSentCalls)
}

func TestProcessPendingMarksSpecialWithoutDigest(t *testing.T) {
	special := completeSession("2026-03-07")
	special.Special = true

	store := club.NewMock()
	store.GetPendingDigestSessionsFunc = func(clubID string) ([]*session.Session, error) {
		return []*session.Session{special}, nil
	}

	proc, notif, ps, _ := newProcessor(store)
	proc.ProcessPending(false)

	assert.Empty(t, ps.Sent)
	assert.Empty(t, notif.DailySummaries)
	assert.Equal(t, []string{"2026-03-07"}, store.MarkDigestSentCalls)
}

func TestProcessPendingGuestOnlySession(t *testing.T) {
	guestOnly := &session.Session{
		Date: "2026-03-07",
		Schedule: []session.Match{
			{GameType: session.GameTypeDoubles, Team1: []string{"게스트_1", "게스트_2"}, Team2: []string{"G1", "G2"}, Court: 1},
		},
		Results: []*session.MatchResult{
			{T1: intPtr(6), T2: intPtr(0)},
		},
	}

	store := club.NewMock()
	store.GetPendingDigestSessionsFunc = func(clubID string) ([]*session.Session, error) {
		return []*session.Session{guestOnly}, nil
	}

	proc, notif, ps, _ := newProcessor(store)
	proc.ProcessPending(false)

	// Nothing to report, but the session stops showing up as pending.
	assert.Empty(t, ps.Sent)
	assert.Empty(t, notif.DailySummaries)
	assert.Equal(t, []string{"2026-03-07"}, store.MarkDigestSentCalls)
}

func TestProcessPendingDryRun(t *testing.T) {
	store := club.NewMock()
	store.GetPendingDigestSessionsFunc = func(clubID string) ([]*session.Session, error) {
		return []*session.Session{completeSession("2026-03-07")}, nil
	}

	proc, notif, ps, m := newProcessor(store)
	proc.ProcessPending(true)

	// The notifier still sees the summary (it handles its own dry-run
	// logging) but nothing is published or persisted.
	assert.Empty(t, ps.Sent)
	require.Len(t, notif.DailySummaries, 1)
	assert.Empty(t, store.MarkDigestSentCalls)
	assert.Equal(t, 0, m.DigestsPublished)
}

func TestProcessPendingMembershipFilter(t *testing.T) {
	store := club.NewMock()
	store.GetPendingDigestSessionsFunc = func(clubID string) ([]*session.Session, error) {
		return []*session.Session{completeSession("2026-03-07")}, nil
	}
	store.MemberNamesFunc = func(clubID string) (stats.Members, error) {
		return stats.Members{"A": {}, "B": {}, "C": {}, "D": {}}, nil
	}

	proc, _, ps, _ := newProcessor(store)
	proc.ProcessPending(false)

	require.Len(t, ps.Sent, 1)
	summary := ps.Sent[0].Data.(*stats.DaySummary)
	assert.Len(t, summary.Stats, 4)
}

func TestProcessPendingStoreError(t *testing.T) {
	store := club.NewMock()
	store.GetPendingDigestSessionsFunc = func(clubID string) ([]*session.Session, error) {
		return nil, errors.New("boom")
	}

	proc, notif, ps, _ := newProcessor(store)
	proc.ProcessPending(false)

	assert.Empty(t, ps.Sent)
	assert.Empty(t, notif.DailySummaries)
}
