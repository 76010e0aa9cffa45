package club

import (
	"sync"

	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// MockStore is a hand-rolled mock of the Store interface for testing. Each
// method delegates to its Func field when set and falls back to a zero-value
// response otherwise. It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	UpsertSessionFunc            func(clubID string, sess *session.Session) error
	GetSessionFunc               func(clubID, date string) (*session.Session, error)
	GetSessionDatesFunc          func(clubID string) ([]string, error)
	GetSessionsForMonthFunc      func(clubID string, year, month int) (map[string]session.Session, error)
	GetAllSessionsFunc           func(clubID string) (map[string]session.Session, error)
	GetPendingDigestSessionsFunc func(clubID string) ([]*session.Session, error)
	MarkDigestSentFunc           func(clubID, date string) error
	UpsertPlayerFunc             func(clubID string, p session.Player) error
	UpsertPlayersFunc            func(clubID string, players []session.Player) error
	GetPlayerFunc                func(clubID, name string) (*session.Player, error)
	GetAllPlayersFunc            func(clubID string) (map[string]session.Player, error)
	MemberNamesFunc              func(clubID string) (stats.Members, error)
	ClearFunc                    func()
	ClearSessionFunc             func(clubID, date string)

	UpsertSessionCalls  []*session.Session
	MarkDigestSentCalls []string
	ClearCalls          int
	ClearSessionCalls   []string
}

var _ Store = (*MockStore)(nil)

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertSession(clubID string, sess *session.Session) error {
	m.mu.Lock()
	m.UpsertSessionCalls = append(m.UpsertSessionCalls, sess)
	m.mu.Unlock()
	if m.UpsertSessionFunc != nil {
		return m.UpsertSessionFunc(clubID, sess)
	}
	return nil
}

func (m *MockStore) GetSession(clubID, date string) (*session.Session, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(clubID, date)
	}
	return nil, nil
}

func (m *MockStore) GetSessionDates(clubID string) ([]string, error) {
	if m.GetSessionDatesFunc != nil {
		return m.GetSessionDatesFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) GetSessionsForMonth(clubID string, year, month int) (map[string]session.Session, error) {
	if m.GetSessionsForMonthFunc != nil {
		return m.GetSessionsForMonthFunc(clubID, year, month)
	}
	return map[string]session.Session{}, nil
}

func (m *MockStore) GetAllSessions(clubID string) (map[string]session.Session, error) {
	if m.GetAllSessionsFunc != nil {
		return m.GetAllSessionsFunc(clubID)
	}
	return map[string]session.Session{}, nil
}

func (m *MockStore) GetPendingDigestSessions(clubID string) ([]*session.Session, error) {
	if m.GetPendingDigestSessionsFunc != nil {
		return m.GetPendingDigestSessionsFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) MarkDigestSent(clubID, date string) error {
	m.mu.Lock()
	m.MarkDigestSentCalls = append(m.MarkDigestSentCalls, date)
	m.mu.Unlock()
	if m.MarkDigestSentFunc != nil {
		return m.MarkDigestSentFunc(clubID, date)
	}
	return nil
}

func (m *MockStore) UpsertPlayer(clubID string, p session.Player) error {
	if m.UpsertPlayerFunc != nil {
		return m.UpsertPlayerFunc(clubID, p)
	}
	return nil
}

func (m *MockStore) UpsertPlayers(clubID string, players []session.Player) error {
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(clubID, players)
	}
	return nil
}

func (m *MockStore) GetPlayer(clubID, name string) (*session.Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(clubID, name)
	}
	return nil, nil
}

func (m *MockStore) GetAllPlayers(clubID string) (map[string]session.Player, error) {
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc(clubID)
	}
	return map[string]session.Player{}, nil
}

func (m *MockStore) MemberNames(clubID string) (stats.Members, error) {
	if m.MemberNamesFunc != nil {
		return m.MemberNamesFunc(clubID)
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

func (m *MockStore) ClearSession(clubID, date string) {
	m.mu.Lock()
	m.ClearSessionCalls = append(m.ClearSessionCalls, date)
	m.mu.Unlock()
	if m.ClearSessionFunc != nil {
		m.ClearSessionFunc(clubID, date)
	}
}
