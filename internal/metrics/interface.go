package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncPollerRuns()
	IncRendersProduced()
	IncSourceErrors()
	IncValidationFailures()
	ObserveRenderDuration(duration float64)
	SetLeaderboardSize(entries int)
	IncUpdatesPublished()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
