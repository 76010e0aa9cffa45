package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds the Prometheus collectors for the stats engine.
type Service struct {
	AggregationsTotal   prometheus.Counter
	AggregationDuration prometheus.Histogram
	CacheHits           prometheus.Counter
	CacheMisses         prometheus.Counter
	DigestsPublished    prometheus.Counter
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
