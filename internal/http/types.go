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

// Server wires the engine, its collaborators and the route table together.
type Server struct {
	Store          club.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Digest         *digest.Processor
	PubSub         pubsub.Client
	Cache          *cache.Store
	Router         *http.ServeMux
}
