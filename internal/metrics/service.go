package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PollerRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overlay_poller_runs_total",
			Help: "The total number of poll ticks, scheduled or manual.",
		}),
		RendersProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overlay_renders_produced_total",
			Help: "The total number of leaderboard and match history renders stored.",
		}),
		SourceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overlay_source_errors_total",
			Help: "The total number of poll ticks skipped because the summary could not be read.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overlay_validation_failures_total",
			Help: "The total number of snapshots or match lists rejected as invalid.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "overlay_render_duration_seconds",
			Help:    "The duration of formatting one summary.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		LeaderboardSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "overlay_leaderboard_entries",
			Help: "The number of competitors in the latest render.",
		}),
		UpdatesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overlay_updates_published_total",
			Help: "The total number of render updates published to Pub/Sub.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overlay_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "overlay_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "overlay_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PollerRuns,
		s.RendersProduced,
		s.SourceErrors,
		s.ValidationFailures,
		s.RenderDuration,
		s.LeaderboardSize,
		s.UpdatesPublished,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPollerRuns() {
	s.PollerRuns.Inc()
}

func (s *Service) IncRendersProduced() {
	s.RendersProduced.Inc()
}

func (s *Service) IncSourceErrors() {
	s.SourceErrors.Inc()
}

func (s *Service) IncValidationFailures() {
	s.ValidationFailures.Inc()
}

func (s *Service) ObserveRenderDuration(duration float64) {
	s.RenderDuration.Observe(duration)
}

func (s *Service) SetLeaderboardSize(entries int) {
	s.LeaderboardSize.Set(float64(entries))
}

func (s *Service) IncUpdatesPublished() {
	s.UpdatesPublished.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
