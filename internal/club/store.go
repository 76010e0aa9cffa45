package club

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// New creates a new Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// UpsertSession inserts or replaces one day's schedule and results. It is
// "dumb" and does not touch digest_status on conflict, so re-saving a score
// never re-fires a digest that was already sent.
func (s *store) UpsertSession(clubID string, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scheduleJSON, err := json.Marshal(sess.Schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}
	resultsJSON, err := json.Marshal(sess.WireResults())
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO sessions (club_id, date, schedule_json, results_json, special, digest_status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(club_id, date) DO UPDATE SET
			schedule_json = excluded.schedule_json,
			results_json = excluded.results_json,
			special = excluded.special;
	`, clubID, sess.Date, string(scheduleJSON), string(resultsJSON), boolToInt(sess.Special), DigestPending)
	return err
}

// GetSession retrieves one day's session, or nil when none was recorded.
func (s *store) GetSession(clubID, date string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT date, schedule_json, results_json, special
		FROM sessions WHERE club_id = ? AND date = ?
	`, clubID, date)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return sess, err
}

// GetSessionDates returns every recorded session date, most recent first.
func (s *store) GetSessionDates(clubID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT date FROM sessions WHERE club_id = ? ORDER BY date DESC", clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

// GetSessionsForMonth returns the sessions of one calendar month keyed by
// date, ready to hand to the cross-session aggregator.
func (s *store) GetSessionsForMonth(clubID string, year, month int) (map[string]session.Session, error) {
	return s.querySessions(`
		SELECT date, schedule_json, results_json, special
		FROM sessions WHERE club_id = ? AND date LIKE ?
	`, clubID, fmt.Sprintf("%04d-%02d-%%", year, month))
}

// GetAllSessions returns the full session log keyed by date.
func (s *store) GetAllSessions(clubID string) (map[string]session.Session, error) {
	return s.querySessions(`
		SELECT date, schedule_json, results_json, special
		FROM sessions WHERE club_id = ?
	`, clubID)
}

func (s *store) querySessions(query string, args ...any) (map[string]session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make(map[string]session.Session)
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			log.Error("Failed to scan session row", "error", err)
			continue
		}
		sessions[sess.Date] = *sess
	}
	return sessions, rows.Err()
}

// GetPendingDigestSessions returns sessions whose daily digest has not been
// published yet, oldest first.
func (s *store) GetPendingDigestSessions(clubID string) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT date, schedule_json, results_json, special
		FROM sessions WHERE club_id = ? AND digest_status = ? ORDER BY date ASC
	`, clubID, DigestPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*session.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			log.Error("Failed to scan session row", "error", err)
			continue
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// MarkDigestSent transitions a session's digest to the sent state.
func (s *store) MarkDigestSent(clubID, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE sessions SET digest_status = ? WHERE club_id = ? AND date = ?",
		DigestSent, clubID, date)
	return err
}

// scanSession is a helper to scan a single session row.
func scanSession(scanner interface{ Scan(...any) error }) (*session.Session, error) {
	var sess session.Session
	var scheduleJSON, resultsJSON sql.NullString
	var special int

	if err := scanner.Scan(&sess.Date, &scheduleJSON, &resultsJSON, &special); err != nil {
		return nil, err
	}
	sess.Special = special != 0

	if scheduleJSON.Valid && scheduleJSON.String != "" {
		if err := json.Unmarshal([]byte(scheduleJSON.String), &sess.Schedule); err != nil {
			log.Error("Failed to unmarshal schedule_json", "error", err, "date", sess.Date)
		}
	}
	results := make(map[string]*session.MatchResult)
	if resultsJSON.Valid && resultsJSON.String != "" {
		if err := json.Unmarshal([]byte(resultsJSON.String), &results); err != nil {
			log.Error("Failed to unmarshal results_json", "error", err, "date", sess.Date)
		}
	}
	sess.ApplyWireResults(results)
	return &sess, nil
}

// UpsertPlayer inserts or updates one roster entry.
func (s *store) UpsertPlayer(clubID string, p session.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertPlayerLocked(clubID, p)
}

// UpsertPlayers bulk-upserts roster entries in a single transaction.
func (s *store) UpsertPlayers(clubID string, players []session.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, p := range players {
		if err := upsertPlayerTx(tx, clubID, p); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *store) upsertPlayerLocked(clubID string, p session.Player) error {
	_, err := s.db.Exec(playerUpsertSQL, upsertPlayerArgs(clubID, p)...)
	return err
}

func upsertPlayerTx(tx *sql.Tx, clubID string, p session.Player) error {
	_, err := tx.Exec(playerUpsertSQL, upsertPlayerArgs(clubID, p)...)
	return err
}

const playerUpsertSQL = `
	INSERT INTO players (club_id, name, gender, hand, ntrp, mbti, age_group, is_guest, is_member)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(club_id, name) DO UPDATE SET
		gender = excluded.gender,
		hand = excluded.hand,
		ntrp = excluded.ntrp,
		mbti = excluded.mbti,
		age_group = excluded.age_group,
		is_guest = excluded.is_guest,
		is_member = excluded.is_member;
`

func upsertPlayerArgs(clubID string, p session.Player) []any {
	return []any{clubID, p.Name, p.Gender, p.Hand, p.NTRP, p.MBTI, p.AgeGroup, boolToInt(p.Guest), boolToInt(p.Member)}
}

// GetPlayer retrieves one roster entry by exact name, or nil when no entry
// exists. Absence follows the GetSession convention and is not an error.
func (s *store) GetPlayer(clubID, name string) (*session.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT name, gender, hand, ntrp, mbti, age_group, is_guest, is_member
		FROM players WHERE club_id = ? AND name = ?
	`, clubID, name)
	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return p, nil
}

// GetAllPlayers returns the full roster keyed by name for attribute lookups.
func (s *store) GetAllPlayers(clubID string) (map[string]session.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name, gender, hand, ntrp, mbti, age_group, is_guest, is_member
		FROM players WHERE club_id = ? ORDER BY name
	`, clubID)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	roster := make(map[string]session.Player)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		roster[p.Name] = *p
	}
	return roster, rows.Err()
}

// MemberNames returns the membership set used to exclude non-members from
// counted stats. Guests are never members regardless of the flag. An empty
// roster yields a nil set, which the aggregators read as "no membership
// filter", so a club that never loaded a roster still gets stats.
func (s *store) MemberNames(clubID string) (stats.Members, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT name FROM players
		WHERE club_id = ? AND is_member = 1 AND is_guest = 0
	`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make(stats.Members)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		members[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}
	return members, nil
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*session.Player, error) {
	var p session.Player
	var ntrp sql.NullFloat64
	var mbti sql.NullString
	var guest, member int

	err := scanner.Scan(&p.Name, &p.Gender, &p.Hand, &ntrp, &mbti, &p.AgeGroup, &guest, &member)
	if err != nil {
		return nil, err
	}
	if ntrp.Valid {
		v := ntrp.Float64
		p.NTRP = &v
	}
	if mbti.Valid {
		v := mbti.String
		p.MBTI = &v
	}
	p.Guest = guest != 0
	p.Member = member != 0
	return &p, nil
}

// Clear wipes every table. Used by tests and the maintenance endpoint.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"sessions", "players"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

// ClearSession removes a single day's session.
func (s *store) ClearSession(clubID, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM sessions WHERE club_id = ? AND date = ?", clubID, date)
	if err != nil {
		log.Error("Failed to clear session", "error", err, "clubID", clubID, "date", date)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
