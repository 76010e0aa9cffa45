package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/vmihailenco/msgpack/v5"
)

// Key identifies one memoized aggregate: the period it covers and any player
// filter applied on top.
type Key struct {
	Period       string
	PlayerFilter string
}

type entry struct {
	fingerprint string
	value       any
}

// Store memoizes aggregator output keyed by (period, playerFilter). Each entry
// carries the content fingerprint of the session set it was computed from, so
// a re-recorded score invalidates the entry without any explicit eviction.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry
}

// New creates an empty cache.
func New() *Store {
	return &Store{entries: make(map[Key]entry)}
}

// Get returns the memoized value for key when it was computed from the same
// session content.
func (s *Store) Get(key Key, fingerprint string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || fingerprint == "" || e.fingerprint != fingerprint {
		return nil, false
	}
	return e.value, true
}

// maxEntries caps the cache. Keys are (period, playerFilter) pairs so growth
// is slow, but a runaway filter surface must not grow the map forever; every
// entry is recomputable, so a full flush is the cheapest eviction.
const maxEntries = 256

// Put stores a computed value under key.
func (s *Store) Put(key Key, fingerprint string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok && len(s.entries) >= maxEntries {
		s.entries = make(map[Key]entry)
	}
	s.entries[key] = entry{fingerprint: fingerprint, value: value}
}

// Len reports the number of memoized entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Fingerprint derives a stable content hash for a session set. Sessions are
// encoded date-sorted, and the encoder sorts map keys, so neither the outer
// map's iteration order nor a result's side-assignment map can change the
// hash between calls.
func Fingerprint(sessions map[string]session.Session) string {
	dates := make([]string, 0, len(sessions))
	for date := range sessions {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	type dated struct {
		Date    string
		Session session.Session
	}
	ordered := make([]dated, 0, len(dates))
	for _, date := range dates {
		ordered = append(ordered, dated{Date: date, Session: sessions[date]})
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(ordered); err != nil {
		// Should not happen for plain session data; an unhashable set simply
		// never hits the cache.
		log.Error("Failed to fingerprint session set", "error", err)
		return ""
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
