package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/mauv0809/league-overlay/internal/board"
	"github.com/mauv0809/league-overlay/internal/config"
	"github.com/mauv0809/league-overlay/internal/metrics"
	"github.com/mauv0809/league-overlay/internal/notifier"
	"github.com/mauv0809/league-overlay/internal/pubsub"
	"github.com/mauv0809/league-overlay/internal/summary"
)

// Refresher runs a single poll on demand.
type Refresher interface {
	Refresh(ctx context.Context, dryRun bool) (*board.Render, error)
}

// LiveSource reads the files that change while a match is being played.
type LiveSource interface {
	LoadCurrentMatch(ctx context.Context) (*summary.CurrentMatch, error)
	LoadActions(ctx context.Context) (*summary.ActionsData, error)
}

type Server struct {
	Store          board.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Poller         Refresher
	Live           LiveSource
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	deliveries     *deliveries
}

// boardResponse is the JSON body of /leaderboard and /matches.
type boardResponse struct {
	ID        string `json:"id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	Live      bool   `json:"live"`
	Ranks     any    `json:"ranks,omitempty"`
	Matches   any    `json:"matches,omitempty"`
}

// errorResponse is the JSON body returned with 4xx and 5xx statuses.
type errorResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations,omitempty"`
}

// deliveries remembers which Slack posts already went out for a render, so a
// redelivered Pub/Sub message only retries the posts that failed.
type deliveries struct {
	mu   sync.Mutex
	sent map[string]struct{}
	// order is oldest first; entries beyond maxDeliveries are forgotten.
	order []string
}

const maxDeliveries = 256

func newDeliveries() *deliveries {
	return &deliveries{sent: make(map[string]struct{})}
}

func deliveryKey(renderID, kind string) string {
	return renderID + "/" + kind
}

// done reports whether kind was already posted for renderID. Renders without
// an ID are never deduplicated.
func (d *deliveries) done(renderID, kind string) bool {
	if renderID == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.sent[deliveryKey(renderID, kind)]
	return ok
}

func (d *deliveries) mark(renderID, kind string) {
	if renderID == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	key := deliveryKey(renderID, kind)
	if _, ok := d.sent[key]; ok {
		return
	}
	d.sent[key] = struct{}{}
	d.order = append(d.order, key)
	if len(d.order) > maxDeliveries {
		delete(d.sent, d.order[0])
		d.order = d.order[1:]
	}
}
