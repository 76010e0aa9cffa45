package analysis

import (
	"sort"

	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// Attribute selects how opponents are grouped. Using a closed enum rather
// than raw field names keeps the switch exhaustive.
type Attribute string

const (
	AttrGender Attribute = "gender"
	AttrHand   Attribute = "hand"
	AttrNTRP   Attribute = "ntrp"
	AttrMBTI   Attribute = "mbti"
)

// ParseAttribute maps a query value to an Attribute; unknown values fall back
// to gender.
func ParseAttribute(s string) Attribute {
	switch Attribute(s) {
	case AttrHand, AttrNTRP, AttrMBTI:
		return Attribute(s)
	default:
		return AttrGender
	}
}

// unknownGroup collects opponents whose roster entry is missing or whose
// attribute was never filled in.
const unknownGroup = "unknown"

// GroupRecord is the focal player's record against one attribute group.
type GroupRecord struct {
	Group   string  `json:"group"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Draws   int     `json:"draws"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"winRate"`
}

// GroupByAttribute partitions the focal player's opponent history by the
// opponent's value for the attribute and returns per-group records. Groups
// with zero games are omitted; guests are skipped entirely.
func GroupByAttribute(sessions map[string]session.Session, focal string, roster map[string]session.Player, attr Attribute) []GroupRecord {
	buckets := make(map[string]*GroupRecord)
	for _, p := range focalPairings(sessions, focal) {
		for _, name := range p.opponents {
			if name == "" || session.IsGuest(name, roster) {
				continue
			}
			group := attributeGroup(roster, name, attr)
			rec, ok := buckets[group]
			if !ok {
				rec = &GroupRecord{Group: group}
				buckets[group] = rec
			}
			rec.Games++
			switch p.outcome {
			case stats.OutcomeWin:
				rec.Wins++
			case stats.OutcomeDraw:
				rec.Draws++
			case stats.OutcomeLoss:
				rec.Losses++
			}
		}
	}

	records := make([]GroupRecord, 0, len(buckets))
	for _, rec := range buckets {
		rec.WinRate = winRate(rec.Wins, rec.Games)
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Games != records[j].Games {
			return records[i].Games > records[j].Games
		}
		return records[i].Group < records[j].Group
	})
	return records
}

func attributeGroup(roster map[string]session.Player, name string, attr Attribute) string {
	p, ok := roster[name]
	if !ok {
		return unknownGroup
	}
	switch attr {
	case AttrHand:
		return orUnknown(p.Hand)
	case AttrNTRP:
		return ntrpBand(p.NTRP)
	case AttrMBTI:
		if p.MBTI == nil {
			return unknownGroup
		}
		return orUnknown(*p.MBTI)
	default:
		return orUnknown(p.Gender)
	}
}

func orUnknown(v string) string {
	if v == "" {
		return unknownGroup
	}
	return v
}

// ntrpBand buckets a numeric NTRP rating to a coarse band so thin per-rating
// samples still produce readable groups.
func ntrpBand(ntrp *float64) string {
	if ntrp == nil {
		return "unrated"
	}
	switch v := *ntrp; {
	case v < 3.0:
		return "<3.0"
	case v < 4.0:
		return "3.0-3.5"
	default:
		return "4.0+"
	}
}
