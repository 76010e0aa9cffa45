package digest

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/minsuk-hwang/courtmate/internal/club"
	"github.com/minsuk-hwang/courtmate/internal/metrics"
	"github.com/minsuk-hwang/courtmate/internal/notifier"
	"github.com/minsuk-hwang/courtmate/internal/pubsub"
	"github.com/minsuk-hwang/courtmate/internal/session"
	"github.com/minsuk-hwang/courtmate/internal/stats"
)

// New creates a new Processor.
func New(store club.Store, notifier notifier.Notifier, metrics metrics.Metrics, pubsub pubsub.Client, clubID string) *Processor {
	return &Processor{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		pubsub:   pubsub,
		clubID:   clubID,
	}
}

// ProcessPending walks sessions whose digest has not been sent and publishes
// one for each session with a complete result set. Sessions still missing
// scores are left pending for the next run.
func (p *Processor) ProcessPending(dryRun bool) {
	log.Info("Starting digest processing...")
	sessions, err := p.store.GetPendingDigestSessions(p.clubID)
	if err != nil {
		log.Error("Failed to get pending digest sessions", "error", err)
		return
	}

	if len(sessions) == 0 {
		log.Info("No sessions pending digest.")
		return
	}

	members, err := p.store.MemberNames(p.clubID)
	if err != nil {
		log.Error("Failed to load membership set", "error", err)
		return
	}

	log.Info("Found sessions pending digest", "count", len(sessions))
	for _, sess := range sessions {
		startTime := time.Now()
		p.processSession(sess, members, dryRun)
		p.metrics.ObserveAggregationDuration(time.Since(startTime).Seconds())
	}
	log.Info("Digest processing finished.")
}

func (p *Processor) processSession(sess *session.Session, members stats.Members, dryRun bool) {
	log.Info("Processing session digest", "date", sess.Date, "special", sess.Special)

	// An exhibition day never counts; mark it sent without a digest so it
	// stops showing up as pending.
	if sess.Special {
		p.markSent(sess.Date, dryRun)
		return
	}

	if !resultsComplete(sess) {
		log.Debug("Session still waiting for results", "date", sess.Date)
		return
	}

	summary := stats.AggregateDay(sess, members)
	p.metrics.IncAggregations()

	if len(summary.Stats) == 0 {
		log.Info("Session has no counted matches. Skipping digest.", "date", sess.Date)
		p.markSent(sess.Date, dryRun)
		return
	}

	if !dryRun {
		if err := p.pubsub.SendMessage(pubsub.EventSessionDigest, summary); err != nil {
			log.Error("Failed to publish session digest", "error", err, "date", sess.Date)
			return
		}
		p.metrics.IncDigestsPublished()
	}

	if err := p.notifier.SendDailySummary(summary, dryRun); err != nil {
		log.Error("Failed to send daily summary", "error", err, "date", sess.Date)
	}
	p.markSent(sess.Date, dryRun)
}

// resultsComplete reports whether every non-deleted match has both scores in.
func resultsComplete(sess *session.Session) bool {
	for i := range sess.Schedule {
		m := &sess.Schedule[i]
		if m.Counted() && !sess.ResultFor(i).Complete() {
			return false
		}
	}
	return true
}

func (p *Processor) markSent(date string, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would mark digest sent", "date", date)
		return
	}
	if err := p.store.MarkDigestSent(p.clubID, date); err != nil {
		log.Error("Failed to mark digest sent", "error", err, "date", date)
	}
}
