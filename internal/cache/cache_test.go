package cache_test

import (
	"fmt"
	"testing"

	"github.com/minsuk-hwang/courtmate/internal/cache"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSessions() map[string]session.Session {
	t1, t2 := 6, 3
	return map[string]session.Session{
		"2026-03-07": {
			Date: "2026-03-07",
			Schedule: []session.Match{
				{GameType: session.GameTypeDoubles, Team1: []string{"A", "B"}, Team2: []string{"C", "D"}, Court: 1},
			},
			Results: []*session.MatchResult{{T1: &t1, T2: &t2}},
		},
	}
}

func TestGetPut(t *testing.T) {
	store := cache.New()
	key := cache.Key{Period: "2026-03"}
	fp := cache.Fingerprint(sampleSessions())
	require.NotEmpty(t, fp)

	_, ok := store.Get(key, fp)
	assert.False(t, ok)

	store.Put(key, fp, "aggregate")
	got, ok := store.Get(key, fp)
	require.True(t, ok)
	assert.Equal(t, "aggregate", got)
	assert.Equal(t, 1, store.Len())
}

func TestGetMissesOnStaleFingerprint(t *testing.T) {
	store := cache.New()
	key := cache.Key{Period: "2026-03"}

	sessions := sampleSessions()
	store.Put(key, cache.Fingerprint(sessions), "aggregate")

	// Re-recording a score changes the content hash and invalidates the
	// entry without any explicit eviction.
	t1, t2 := 6, 4
	sess := sessions["2026-03-07"]
	sess.Results[0] = &session.MatchResult{T1: &t1, T2: &t2}
	sessions["2026-03-07"] = sess

	_, ok := store.Get(key, cache.Fingerprint(sessions))
	assert.False(t, ok)
}

func TestGetMissesOnEmptyFingerprint(t *testing.T) {
	store := cache.New()
	key := cache.Key{Period: "all"}
	store.Put(key, "", "aggregate")

	_, ok := store.Get(key, "")
	assert.False(t, ok)
}

func TestFingerprintStable(t *testing.T) {
	a := cache.Fingerprint(sampleSessions())
	b := cache.Fingerprint(sampleSessions())
	assert.Equal(t, a, b)
}

// Side assignments are stored as a map, whose iteration order is randomized,
// so the hash must come out identical across many encodings of the same set.
func TestFingerprintStableWithSides(t *testing.T) {
	withSides := func() map[string]session.Session {
		sessions := sampleSessions()
		sess := sessions["2026-03-07"]
		sess.Results[0].Sides = map[string]string{
			"A": "deuce", "B": "ad", "C": "deuce", "D": "ad",
		}
		sessions["2026-03-07"] = sess
		return sessions
	}

	first := cache.Fingerprint(withSides())
	require.NotEmpty(t, first)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, cache.Fingerprint(withSides()), "call %d", i+1)
	}
}

func TestPutEvictsWhenFull(t *testing.T) {
	store := cache.New()
	fp := cache.Fingerprint(sampleSessions())

	for i := 0; i < 300; i++ {
		store.Put(cache.Key{Period: "all", PlayerFilter: fmt.Sprintf("p%d", i)}, fp, i)
	}
	assert.Less(t, store.Len(), 300)

	// The freshest entry survives the flush.
	got, ok := store.Get(cache.Key{Period: "all", PlayerFilter: "p299"}, fp)
	require.True(t, ok)
	assert.Equal(t, 299, got)
}

func TestKeysAreIndependent(t *testing.T) {
	store := cache.New()
	fp := cache.Fingerprint(sampleSessions())

	store.Put(cache.Key{Period: "2026-03"}, fp, "month")
	store.Put(cache.Key{Period: "all", PlayerFilter: "A"}, fp, "profile")

	got, ok := store.Get(cache.Key{Period: "2026-03"}, fp)
	require.True(t, ok)
	assert.Equal(t, "month", got)

	_, ok = store.Get(cache.Key{Period: "2026-04"}, fp)
	assert.False(t, ok)
}
