package http

import (
	"net/http"

	"github.com/mauv0809/league-overlay/internal/board"
	"github.com/mauv0809/league-overlay/internal/config"
	"github.com/mauv0809/league-overlay/internal/metrics"
	"github.com/mauv0809/league-overlay/internal/notifier"
	"github.com/mauv0809/league-overlay/internal/pubsub"
)

func NewServer(store board.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, poller Refresher, live LiveSource, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Poller:         poller,
		Live:           live,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
		deliveries:     newDeliveries(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	slackVerified := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.MatchesHandler(), paramsMiddleware))
	s.Router.Handle("/current-match", Chain(s.CurrentMatchHandler(), paramsMiddleware))
	s.Router.Handle("/actions", Chain(s.ActionsHandler(), paramsMiddleware))
	s.Router.Handle("/renders", Chain(s.ListRendersHandler(), paramsMiddleware))
	s.Router.Handle("/refresh", Chain(s.RefreshHandler(), paramsMiddleware))
	s.Router.Handle("/render", Chain(s.RenderHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/overlay-updated", Chain(s.OverlayUpdatedHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware, slackVerified))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
