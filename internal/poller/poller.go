package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-overlay/internal/board"
	"github.com/mauv0809/league-overlay/internal/metrics"
	"github.com/mauv0809/league-overlay/internal/overlay"
	"github.com/mauv0809/league-overlay/internal/pubsub"
	"github.com/mauv0809/league-overlay/internal/summary"
)

// Poller turns the league runner's summary files into stored renders on a fixed interval.
type Poller struct {
	source   summary.Source
	store    board.Store
	pubsub   pubsub.PubSubClient
	metrics  metrics.Metrics
	interval time.Duration
	keep     int

	// mu serialises scheduled and manual refreshes.
	mu sync.Mutex
}

// New creates a new Poller. keep is the number of renders retained in the
// store; zero keeps everything.
func New(source summary.Source, store board.Store, pubsub pubsub.PubSubClient, metrics metrics.Metrics, interval time.Duration, keep int) *Poller {
	return &Poller{
		source:   source,
		store:    store,
		pubsub:   pubsub,
		metrics:  metrics,
		interval: interval,
		keep:     keep,
	}
}

// Run refreshes immediately and then on every tick until ctx is cancelled.
// Failed ticks are logged and skipped; the previous render stays current.
func (p *Poller) Run(ctx context.Context) {
	log.Info("Starting poller", "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if _, err := p.Refresh(ctx, false); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("Poll tick skipped", "error", err)
		}
		select {
		case <-ctx.Done():
			log.Info("Poller stopped")
			return
		case <-ticker.C:
		}
	}
}

// Refresh performs a single poll: load, format, store and publish. In dry-run
// mode the render is returned but neither stored nor published.
func (p *Poller) Refresh(ctx context.Context, dryRun bool) (*board.Render, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.metrics.IncPollerRuns()
	s, current, err := p.source.Load(ctx)
	if err != nil {
		p.metrics.IncSourceErrors()
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}

	render, err := p.format(s, current)
	if err != nil {
		if errors.Is(err, overlay.ErrValidation) {
			p.metrics.IncValidationFailures()
		}
		return nil, err
	}
	log.Debug("Formatted summary", "entries", len(render.Ranks), "matches", len(render.Matches), "live", render.Live)

	if dryRun {
		log.Info("[Dry Run] Would have stored and published render", "entries", len(render.Ranks), "matches", len(render.Matches))
		return render, nil
	}

	if err := p.store.Save(render); err != nil {
		return nil, fmt.Errorf("failed to store render: %w", err)
	}
	p.metrics.IncRendersProduced()
	p.metrics.SetLeaderboardSize(len(render.Ranks))

	if p.keep > 0 {
		if _, err := p.store.Prune(p.keep); err != nil {
			log.Error("Failed to prune renders", "error", err)
		}
	}

	if err := p.pubsub.SendMessage(ctx, pubsub.EventOverlayUpdated, render); err != nil {
		// The render is stored; subscribers catch up on the next tick.
		log.Error("Failed to publish overlay update", "error", err, "render_id", render.ID)
	} else {
		p.metrics.IncUpdatesPublished()
	}

	log.Info("Render stored", "render_id", render.ID, "entries", len(render.Ranks), "matches", len(render.Matches))
	return render, nil
}

func (p *Poller) format(s *summary.Summary, current *summary.CurrentMatch) (*board.Render, error) {
	start := time.Now()
	defer func() {
		p.metrics.ObserveRenderDuration(time.Since(start).Seconds())
	}()
	return Format(s, current)
}

// Format runs both formatting pipelines over a decoded summary.
func Format(s *summary.Summary, current *summary.CurrentMatch) (*board.Render, error) {
	ranks, err := overlay.FormatRanks(s.Snapshot(), current.ActiveMatch())
	if err != nil {
		return nil, fmt.Errorf("leaderboard rejected: %w", err)
	}
	matches, err := overlay.FormatMatches(s.MatchRecords())
	if err != nil {
		return nil, fmt.Errorf("match history rejected: %w", err)
	}
	return &board.Render{
		Live:    current != nil,
		Ranks:   ranks,
		Matches: matches,
	}, nil
}
