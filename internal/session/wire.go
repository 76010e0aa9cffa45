package session

import (
	"encoding/json"
	"strconv"
)

// The recording app persists results as a map keyed by the stringified 1-based
// schedule position ({"1": {...}, "3": {...}}). Internally we keep a slice
// aligned with the schedule; the conversion happens only at the JSON boundary
// so the stored format stays compatible.

type wireSession struct {
	Date     string                  `json:"date,omitempty"`
	Schedule []Match                 `json:"schedule"`
	Results  map[string]*MatchResult `json:"results"`
	Special  bool                    `json:"specialMatch,omitempty"`
}

// WireResults converts the aligned results slice to the persisted map form.
func (s *Session) WireResults() map[string]*MatchResult {
	out := make(map[string]*MatchResult)
	for i, r := range s.Results {
		if r != nil {
			out[strconv.Itoa(i+1)] = r
		}
	}
	return out
}

// ApplyWireResults aligns a persisted results map with the schedule. Keys
// that do not parse as a 1-based schedule position are dropped.
func (s *Session) ApplyWireResults(results map[string]*MatchResult) {
	s.Results = make([]*MatchResult, len(s.Schedule))
	for key, r := range results {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 1 || idx > len(s.Schedule) {
			continue
		}
		s.Results[idx-1] = r
	}
}

// MarshalJSON renders the session in the recording app's wire format.
func (s Session) MarshalJSON() ([]byte, error) {
	w := wireSession{
		Date:     s.Date,
		Schedule: s.Schedule,
		Results:  s.WireResults(),
		Special:  s.Special,
	}
	return json.Marshal(w)
}

// UnmarshalJSON parses the wire format back into the aligned representation.
// Result keys that do not parse as a 1-based schedule position are dropped
// rather than treated as an error.
func (s *Session) UnmarshalJSON(data []byte) error {
	var w wireSession
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Date = w.Date
	s.Schedule = w.Schedule
	s.Special = w.Special
	s.ApplyWireResults(w.Results)
	return nil
}
