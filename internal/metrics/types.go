package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	PollerRuns         prometheus.Counter
	RendersProduced    prometheus.Counter
	SourceErrors       prometheus.Counter
	ValidationFailures prometheus.Counter
	RenderDuration     prometheus.Histogram
	LeaderboardSize    prometheus.Gauge
	UpdatesPublished   prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
