package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/minsuk-hwang/courtmate/internal/analysis"
	"github.com/minsuk-hwang/courtmate/internal/cache"
	"github.com/minsuk-hwang/courtmate/internal/pubsub"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// trendLookbackMonths bounds the monthly form series on the profile screen.
const trendLookbackMonths = 6

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date != "" {
			log.Info("Received request to clear a specific session", "date", date)
			s.Store.ClearSession(s.Cfg.ClubID, date)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared session %s from store!", date)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
		}
	}
}

func (s *Server) SessionDatesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, err := s.Store.GetSessionDates(s.Cfg.ClubID)
		if err != nil {
			log.Error("Failed to get session dates", "error", err)
			http.Error(w, "Failed to get session dates", http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"dates": dates})
	}
}

// DailyHandler returns one day's aggregated stats and highlights.
func (s *Server) DailyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			http.Error(w, "'date' parameter is required", http.StatusBadRequest)
			return
		}

		sess, err := s.Store.GetSession(s.Cfg.ClubID, date)
		if err != nil {
			log.Error("Failed to get session", "error", err, "date", date)
			http.Error(w, "Failed to get session", http.StatusInternalServerError)
			return
		}
		if sess == nil {
			http.Error(w, "No session recorded for that date", http.StatusNotFound)
			return
		}

		members, err := s.Store.MemberNames(s.Cfg.ClubID)
		if err != nil {
			log.Error("Failed to load membership set", "error", err)
			http.Error(w, "Failed to load members", http.StatusInternalServerError)
			return
		}

		start := time.Now()
		summary := stats.AggregateDay(sess, members)
		s.Metrics.IncAggregations()
		s.Metrics.ObserveAggregationDuration(time.Since(start).Seconds())

		respondJSON(w, summary)
	}
}

// RankingsHandler returns the leaderboard for a month (or all time), computed
// through the aggregate cache.
func (s *Server) RankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		by := stats.ParseCriterion(r.URL.Query().Get("by"))

		sessions, period, err := s.sessionsForPeriod(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		summary, err := s.aggregatePeriodCached(sessions, period)
		if err != nil {
			log.Error("Failed to aggregate period", "error", err, "period", period)
			http.Error(w, "Failed to aggregate period", http.StatusInternalServerError)
			return
		}

		rows := stats.Rank(summary.Stats, summary.Attendance, by)
		respondJSON(w, map[string]any{
			"period":   period,
			"by":       by,
			"rankings": rows,
			"bests":    summary.Bests,
		})
	}
}

// PlayerProfile is the personal-profile screen payload: cumulative record,
// relationships and form trend for one member.
type PlayerProfile struct {
	Name        string                   `json:"name"`
	Stats       *stats.PlayerStats       `json:"stats,omitempty"`
	Attendance  int                      `json:"attendance"`
	BestPartner *analysis.Record         `json:"bestPartner,omitempty"`
	Rival       *analysis.Record         `json:"rival,omitempty"`
	Nemesis     *analysis.Record         `json:"nemesis,omitempty"`
	Opponents   []analysis.Record        `json:"opponents,omitempty"`
	Partners    []analysis.Record        `json:"partners,omitempty"`
	Groups      []analysis.GroupRecord   `json:"groups,omitempty"`
	Trend       []stats.TrendPoint       `json:"trend,omitempty"`
}

func (s *Server) PlayerProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			http.Error(w, "'name' parameter is required", http.StatusBadRequest)
			return
		}
		attr := analysis.ParseAttribute(r.URL.Query().Get("attr"))

		sessions, members, roster, err := s.loadAll()
		if err != nil {
			http.Error(w, "Failed to load session log", http.StatusInternalServerError)
			return
		}

		summary, err := s.aggregatePeriodCached(sessions, "all")
		if err != nil {
			http.Error(w, "Failed to aggregate session log", http.StatusInternalServerError)
			return
		}

		profile := PlayerProfile{
			Name:        name,
			Stats:       summary.Stats[name],
			Attendance:  summary.Attendance[name],
			BestPartner: analysis.BestPartner(sessions, name),
			Rival:       analysis.Rival(sessions, name),
			Nemesis:     analysis.Nemesis(sessions, name),
			Opponents:   analysis.OpponentStats(sessions, name),
			Partners:    analysis.PartnerStats(sessions, name),
			Groups:      analysis.GroupByAttribute(sessions, name, roster, attr),
			Trend:       stats.MonthlyTrend(sessions, name, members, trendLookbackMonths),
		}
		respondJSON(w, profile)
	}
}

func (s *Server) HeadToHeadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := r.URL.Query().Get("a")
		b := r.URL.Query().Get("b")
		if a == "" || b == "" {
			http.Error(w, "'a' and 'b' parameters are required", http.StatusBadRequest)
			return
		}
		opts := analysis.HeadToHeadOptions{
			LimitPartner:  intParam(r, "limit_partner"),
			LimitOpponent: intParam(r, "limit_opponent"),
		}

		sessions, err := s.Store.GetAllSessions(s.Cfg.ClubID)
		if err != nil {
			log.Error("Failed to get sessions", "error", err)
			http.Error(w, "Failed to load session log", http.StatusInternalServerError)
			return
		}

		respondJSON(w, analysis.GetHeadToHead(sessions, a, b, opts))
	}
}

func (s *Server) ProbabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team1 := splitNames(r.URL.Query().Get("t1"))
		team2 := splitNames(r.URL.Query().Get("t2"))
		if len(team1) == 0 || len(team2) == 0 {
			http.Error(w, "'t1' and 't2' parameters are required", http.StatusBadRequest)
			return
		}

		sessions, err := s.Store.GetAllSessions(s.Cfg.ClubID)
		if err != nil {
			log.Error("Failed to get sessions", "error", err)
			http.Error(w, "Failed to load session log", http.StatusInternalServerError)
			return
		}

		respondJSON(w, analysis.MatchProbability(sessions, team1, team2))
	}
}

func (s *Server) AttributeGroupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			http.Error(w, "'name' parameter is required", http.StatusBadRequest)
			return
		}
		attr := analysis.ParseAttribute(r.URL.Query().Get("attr"))

		sessions, _, roster, err := s.loadAll()
		if err != nil {
			http.Error(w, "Failed to load session log", http.StatusInternalServerError)
			return
		}

		respondJSON(w, map[string]any{
			"name":   name,
			"attr":   attr,
			"groups": analysis.GroupByAttribute(sessions, name, roster, attr),
		})
	}
}

func (s *Server) DigestRunHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := dryRun(r)
		s.Digest.ProcessPending(isDryRun)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Digest processing finished!")
	}
}

// NotifyLeaderboardHandler computes the requested period's leaderboard and
// posts it to the club channel.
func (s *Server) NotifyLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := dryRun(r)
		by := stats.ParseCriterion(r.URL.Query().Get("by"))

		sessions, period, err := s.sessionsForPeriod(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		summary, err := s.aggregatePeriodCached(sessions, period)
		if err != nil {
			http.Error(w, "Failed to aggregate period", http.StatusInternalServerError)
			return
		}

		rows := stats.Rank(summary.Stats, summary.Attendance, by)
		if !isDryRun {
			if err := s.PubSub.SendMessage(pubsub.EventPeriodSummary, summary); err != nil {
				log.Error("Failed to publish period summary", "error", err, "period", period)
			}
		}
		if err := s.Notifier.SendLeaderboard(rows, period, isDryRun); err != nil {
			http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Leaderboard sent!")
	}
}

// sessionsForPeriod resolves the year/month query into a session map and a
// period label; no year/month means the full log.
func (s *Server) sessionsForPeriod(r *http.Request) (map[string]session.Session, string, error) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	if yearStr == "" && monthStr == "" {
		sessions, err := s.Store.GetAllSessions(s.Cfg.ClubID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load session log")
		}
		return sessions, "all", nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, "", fmt.Errorf("invalid 'year' parameter")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return nil, "", fmt.Errorf("invalid 'month' parameter")
	}

	sessions, err := s.Store.GetSessionsForMonth(s.Cfg.ClubID, year, month)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load sessions for month")
	}
	return sessions, fmt.Sprintf("%04d-%02d", year, month), nil
}

// aggregatePeriodCached runs the cross-session aggregator through the
// content-hash cache.
func (s *Server) aggregatePeriodCached(sessions map[string]session.Session, period string) (*stats.PeriodSummary, error) {
	key := cache.Key{Period: period}
	fingerprint := cache.Fingerprint(sessions)

	if cached, ok := s.Cache.Get(key, fingerprint); ok {
		s.Metrics.IncCacheHits()
		return cached.(*stats.PeriodSummary), nil
	}
	s.Metrics.IncCacheMisses()

	members, err := s.Store.MemberNames(s.Cfg.ClubID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	summary := stats.AggregatePeriod(sessions, members)
	s.Metrics.IncAggregations()
	s.Metrics.ObserveAggregationDuration(time.Since(start).Seconds())

	s.Cache.Put(key, fingerprint, summary)
	return summary, nil
}

func (s *Server) loadAll() (map[string]session.Session, stats.Members, map[string]session.Player, error) {
	sessions, err := s.Store.GetAllSessions(s.Cfg.ClubID)
	if err != nil {
		log.Error("Failed to get sessions", "error", err)
		return nil, nil, nil, err
	}
	members, err := s.Store.MemberNames(s.Cfg.ClubID)
	if err != nil {
		log.Error("Failed to load membership set", "error", err)
		return nil, nil, nil, err
	}
	roster, err := s.Store.GetAllPlayers(s.Cfg.ClubID)
	if err != nil {
		log.Error("Failed to load roster", "error", err)
		return nil, nil, nil, err
	}
	return sessions, members, roster, nil
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func intParam(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func splitNames(raw string) []string {
	if raw == "" {
		return nil
	}
	var names []string
	for _, n := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(n); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}
