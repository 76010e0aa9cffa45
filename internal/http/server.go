package http

import (
	"net/http"

	"github.com/minsuk-hwang/courtmate/internal/cache"
	"github.com/minsuk-hwang/courtmate/internal/club"
	"github.com/minsuk-hwang/courtmate/internal/config"
	"github.com/minsuk-hwang/courtmate/internal/digest"
	"github.com/minsuk-hwang/courtmate/internal/metrics"
	"github.com/minsuk-hwang/courtmate/internal/notifier"
	"github.com/minsuk-hwang/courtmate/internal/pubsub"
)

func NewServer(store club.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, digest *digest.Processor, pubsubClient pubsub.Client, aggCache *cache.Store) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Digest:         digest,
		PubSub:         pubsubClient,
		Cache:          aggCache,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// The metrics endpoint is exempt from request logging; everything else
	// goes through the shared request middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", wrap(s.HealthCheckHandler(), requestMiddleware))
	s.Router.Handle("/clear", wrap(s.ClearStoreHandler(), requestMiddleware))
	s.Router.Handle("/sessions/dates", wrap(s.SessionDatesHandler(), requestMiddleware))
	s.Router.Handle("/daily", wrap(s.DailyHandler(), requestMiddleware))
	s.Router.Handle("/rankings", wrap(s.RankingsHandler(), requestMiddleware))
	s.Router.Handle("/player", wrap(s.PlayerProfileHandler(), requestMiddleware))
	s.Router.Handle("/head-to-head", wrap(s.HeadToHeadHandler(), requestMiddleware))
	s.Router.Handle("/probability", wrap(s.ProbabilityHandler(), requestMiddleware))
	s.Router.Handle("/groups", wrap(s.AttributeGroupsHandler(), requestMiddleware))
	s.Router.Handle("/digest/run", wrap(s.DigestRunHandler(), requestMiddleware))
	s.Router.Handle("/notify-leaderboard", wrap(s.NotifyLeaderboardHandler(), requestMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
