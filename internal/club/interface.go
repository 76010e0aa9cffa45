package club

import (
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// Store defines the interface for the club's session log and roster. The
// statistics engine only ever reads through it; writes come from the
// recording app and the digest processor. Single-row getters return
// (nil, nil) when no row exists; absence is not an error.
type Store interface {
	UpsertSession(clubID string, sess *session.Session) error
	GetSession(clubID, date string) (*session.Session, error)
	GetSessionDates(clubID string) ([]string, error)
	GetSessionsForMonth(clubID string, year, month int) (map[string]session.Session, error)
	GetAllSessions(clubID string) (map[string]session.Session, error)
	GetPendingDigestSessions(clubID string) ([]*session.Session, error)
	MarkDigestSent(clubID, date string) error

	UpsertPlayer(clubID string, p session.Player) error
	UpsertPlayers(clubID string, players []session.Player) error
	GetPlayer(clubID, name string) (*session.Player, error)
	GetAllPlayers(clubID string) (map[string]session.Player, error)
	MemberNames(clubID string) (stats.Members, error)

	Clear()
	ClearSession(clubID, date string)
}
