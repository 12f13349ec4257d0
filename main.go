package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-overlay/internal/board"
	"github.com/mauv0809/league-overlay/internal/config"
	"github.com/mauv0809/league-overlay/internal/database"
	server "github.com/mauv0809/league-overlay/internal/http"
	"github.com/mauv0809/league-overlay/internal/metrics"
	"github.com/mauv0809/league-overlay/internal/notifier/slack"
	"github.com/mauv0809/league-overlay/internal/poller"
	"github.com/mauv0809/league-overlay/internal/pubsub"
	"github.com/mauv0809/league-overlay/internal/summary"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping default", "level", cfg.LogLevel)
	}

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store := board.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var ps pubsub.PubSubClient
	if cfg.PubSub.ProjectID != "" {
		ps, err = pubsub.New(ctx, cfg.PubSub.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
	} else {
		log.Warn("GCP_PROJECT not set, overlay updates will not be published")
		ps = pubsub.Disabled()
	}
	defer ps.Close()

	var notifier *slack.Notifier
	if cfg.SlackEnabled() {
		notifier = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc, slack.DefaultGlyphs())
	} else {
		log.Warn("Slack not configured, notifications will only be logged")
		notifier = slack.NewLogOnlyNotifier(metricsSvc, slack.DefaultGlyphs())
	}

	source := summary.NewDirSource(cfg.Overlay.Dir)
	p := poller.New(source, store, ps, metricsSvc, cfg.Overlay.PollInterval, cfg.Overlay.KeepRenders)
	go p.Run(ctx)

	s := server.NewServer(
		store,
		metricsSvc,
		metricsHandler,
		cfg,
		p,
		source,
		notifier,
		ps,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds(), "overlay_dir", cfg.Overlay.Dir)

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)
		stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
