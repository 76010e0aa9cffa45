package digest

import (
	"github.com/minsuk-hwang/courtmate/internal/club"
	"github.com/minsuk-hwang/courtmate/internal/metrics"
	"github.com/minsuk-hwang/courtmate/internal/notifier"
	"github.com/minsuk-hwang/courtmate/internal/pubsub"
)

// Processor publishes daily digests for sessions whose results are complete.
type Processor struct {
	store    club.Store
	notifier notifier.Notifier
	metrics  metrics.Metrics
	pubsub   pubsub.Client
	clubID   string
}
