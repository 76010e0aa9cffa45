package metrics

// Metrics defines the instrumentation points used across the application.
type Metrics interface {
	IncAggregations()
	ObserveAggregationDuration(seconds float64)
	IncCacheHits()
	IncCacheMisses()
	IncDigestsPublished()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(seconds float64)
}
