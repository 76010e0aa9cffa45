package analysis

import (
	"sort"

	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// Sample-size floors below which a relationship is not reported at all. A 100%
// win rate over one game is noise, not a best partner.
const (
	minPartnerGames = 3
	minRivalGames   = 3
	minNemesisGames = 2
)

// Record is one row of a per-partner or per-opponent table, from the focal
// player's perspective.
type Record struct {
	Name    string  `json:"name"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Draws   int     `json:"draws"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

// pairing is one counted match flattened to the focal player's perspective.
// Pairings are produced most recent session first so recency limits are a
// simple prefix.
type pairing struct {
	outcome   stats.Outcome
	teammates []string
	opponents []string
}

// focalPairings scans every counted, fully-scored match the focal player
// appears in, most recent session first. Exhibition sessions are skipped, the
// same as in every other aggregate.
func focalPairings(sessions map[string]session.Session, focal string) []pairing {
	dates := make([]string, 0, len(sessions))
	for date := range sessions {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	var pairings []pairing
	for _, date := range dates {
		sess := sessions[date]
		if sess.Special {
			continue
		}
		for i := range sess.Schedule {
			m := &sess.Schedule[i]
			r := sess.ResultFor(i)
			if !m.Counted() || !r.Complete() {
				continue
			}
			var p pairing
			switch {
			case contains(m.Team1, focal):
				p.outcome = stats.Classify(r.T1, r.T2)
				p.teammates = others(m.Team1, focal)
				p.opponents = m.Team2
			case contains(m.Team2, focal):
				p.outcome = stats.Classify(r.T1, r.T2).Invert()
				p.teammates = others(m.Team2, focal)
				p.opponents = m.Team1
			default:
				continue
			}
			pairings = append(pairings, p)
		}
	}
	return pairings
}

func contains(team []string, name string) bool {
	for _, n := range team {
		if n == name {
			return true
		}
	}
	return false
}

func others(team []string, focal string) []string {
	var rest []string
	for _, n := range team {
		if n != focal {
			rest = append(rest, n)
		}
	}
	return rest
}

// OpponentStats builds the focal player's full per-opponent table. Guests are
// never reported as counterparts.
func OpponentStats(sessions map[string]session.Session, focal string) []Record {
	return counterpartTable(sessions, focal, func(p pairing) []string { return p.opponents })
}

// PartnerStats builds the focal player's full per-partner table.
func PartnerStats(sessions map[string]session.Session, focal string) []Record {
	return counterpartTable(sessions, focal, func(p pairing) []string { return p.teammates })
}

func counterpartTable(sessions map[string]session.Session, focal string, pick func(pairing) []string) []Record {
	buckets := make(map[string]*Record)
	for _, p := range focalPairings(sessions, focal) {
		for _, name := range pick(p) {
			if name == "" || session.IsGuestName(name) {
				continue
			}
			rec, ok := buckets[name]
			if !ok {
				rec = &Record{Name: name}
				buckets[name] = rec
			}
			tally(rec, p.outcome)
		}
	}
	records := make([]Record, 0, len(buckets))
	for _, rec := range buckets {
		rec.WinRate = winRate(rec.Wins, rec.Games)
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Games != records[j].Games {
			return records[i].Games > records[j].Games
		}
		return records[i].Name < records[j].Name
	})
	return records
}

func tally(rec *Record, o stats.Outcome) {
	rec.Games++
	switch o {
	case stats.OutcomeWin:
		rec.Wins++
	case stats.OutcomeDraw:
		rec.Draws++
	case stats.OutcomeLoss:
		rec.Losses++
	}
}

func winRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}

// BestPartner is the partner with the highest win rate over a meaningful
// sample, or nil when no partnership clears the floor.
func BestPartner(sessions map[string]session.Session, focal string) *Record {
	return selectRecord(PartnerStats(sessions, focal), minPartnerGames, func(best, cand *Record) bool {
		return cand.WinRate > best.WinRate
	})
}

// Rival is the opponent whose record against the focal player is closest to
// even, i.e. the most competitive matchup.
func Rival(sessions map[string]session.Session, focal string) *Record {
	return selectRecord(OpponentStats(sessions, focal), minRivalGames, func(best, cand *Record) bool {
		db := best.WinRate - 0.5
		dc := cand.WinRate - 0.5
		if db < 0 {
			db = -db
		}
		if dc < 0 {
			dc = -dc
		}
		return dc < db
	})
}

// Nemesis is the opponent with the lowest win rate against, i.e. the player
// the focal player most struggles to beat.
func Nemesis(sessions map[string]session.Session, focal string) *Record {
	return selectRecord(OpponentStats(sessions, focal), minNemesisGames, func(best, cand *Record) bool {
		return cand.WinRate < best.WinRate
	})
}

func selectRecord(records []Record, floor int, better func(best, cand *Record) bool) *Record {
	var best *Record
	for i := range records {
		rec := &records[i]
		if rec.Games < floor {
			continue
		}
		if best == nil || better(best, rec) {
			best = rec
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}
