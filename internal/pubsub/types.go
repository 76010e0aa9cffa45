package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType doubles as the Pub/Sub topic name for the event.
type EventType string

const (
	// EventSessionDigest carries one day's aggregated summary.
	EventSessionDigest EventType = "session-digest"
	// EventPeriodSummary carries a monthly (or all-time) aggregate.
	EventPeriodSummary EventType = "period-summary"
)
