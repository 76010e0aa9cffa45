package session

// GameType mirrors the recording app's wire values. The Korean strings are the
// persisted format and must not be translated.
type GameType string

const (
	// GameTypeDoubles is a two-a-side match (복식).
	GameTypeDoubles GameType = "복식"
	// GameTypeSingles is a one-a-side match (단식).
	GameTypeSingles GameType = "단식"
	// GameTypeDeleted marks a match as voided (삭제). It is excluded from every
	// aggregate as if it was never scheduled.
	GameTypeDeleted GameType = "삭제"
)

// Match is one scheduled contest within a session. Team rosters are ordered
// name lists of size 1 (singles) or 2 (doubles).
type Match struct {
	GameType GameType `json:"gameType"`
	Team1    []string `json:"team1"`
	Team2    []string `json:"team2"`
	Court    int      `json:"court"`
}

// Counted reports whether the match participates in aggregation at all.
func (m *Match) Counted() bool {
	return m.GameType != GameTypeDeleted
}

// Players returns every name listed on either team.
func (m *Match) Players() []string {
	names := make([]string, 0, len(m.Team1)+len(m.Team2))
	names = append(names, m.Team1...)
	names = append(names, m.Team2...)
	return names
}

// HasPlayer reports whether name appears on either team.
func (m *Match) HasPlayer(name string) bool {
	for _, n := range m.Players() {
		if n == name {
			return true
		}
	}
	return false
}

// MatchResult is the recorded score for a match. A nil score on either side
// means the result is incomplete and the match is excluded from W/L/D
// accounting.
type MatchResult struct {
	T1    *int              `json:"t1"`
	T2    *int              `json:"t2"`
	Sides map[string]string `json:"sides,omitempty"`
}

// Complete reports whether both scores were recorded.
func (r *MatchResult) Complete() bool {
	return r != nil && r.T1 != nil && r.T2 != nil
}

// Session is one calendar day of club play: the ordered schedule plus any
// recorded results, aligned by position. Results[i] is nil until the score for
// Schedule[i] is entered.
type Session struct {
	Date     string
	Schedule []Match
	Results  []*MatchResult
	// Special marks an exhibition day (e.g. an inter-club friendly) whose
	// matches never count toward rankings.
	Special bool
}

// ResultFor returns the recorded result for the match at schedule position i,
// or nil when none was entered.
func (s *Session) ResultFor(i int) *MatchResult {
	if i < 0 || i >= len(s.Results) {
		return nil
	}
	return s.Results[i]
}

// Player is a roster entry. Name is the primary key throughout; the remaining
// attributes feed the attribute grouper. Roster entries are maintained by club
// administration and are read-only to the engine.
type Player struct {
	Name     string   `json:"name"`
	Gender   string   `json:"gender,omitempty"`
	Hand     string   `json:"hand,omitempty"`
	NTRP     *float64 `json:"ntrp,omitempty"`
	MBTI     *string  `json:"mbti,omitempty"`
	AgeGroup string   `json:"ageGroup,omitempty"`
	Guest    bool     `json:"guest,omitempty"`
	Member   bool     `json:"member,omitempty"`
}
