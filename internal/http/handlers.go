package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-overlay/internal/board"
	"github.com/mauv0809/league-overlay/internal/overlay"
	"github.com/mauv0809/league-overlay/internal/poller"
	"github.com/mauv0809/league-overlay/internal/summary"
	"github.com/slack-go/slack"
)

// maxSummaryBytes bounds the body accepted by /render.
const maxSummaryBytes = 4 << 20

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// LeaderboardHandler returns the rank records of the latest render.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render, ok := s.latestRender(w)
		if !ok {
			return
		}
		respondWithJSON(w, http.StatusOK, boardResponse{
			ID:        render.ID,
			CreatedAt: render.CreatedAt.Format(time.RFC3339Nano),
			Live:      render.Live,
			Ranks:     render.Ranks,
		})
	}
}

// MatchesHandler returns the match history rows of the latest render.
func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render, ok := s.latestRender(w)
		if !ok {
			return
		}
		respondWithJSON(w, http.StatusOK, boardResponse{
			ID:        render.ID,
			CreatedAt: render.CreatedAt.Format(time.RFC3339Nano),
			Live:      render.Live,
			Matches:   render.Matches,
		})
	}
}

func (s *Server) latestRender(w http.ResponseWriter) (*board.Render, bool) {
	render, err := s.Store.Latest()
	if errors.Is(err, board.ErrNoRender) {
		respondWithJSON(w, http.StatusNotFound, errorResponse{Error: "nothing rendered yet"})
		return nil, false
	}
	if err != nil {
		log.Error("Failed to load latest render", "error", err)
		http.Error(w, "Failed to load render", http.StatusInternalServerError)
		return nil, false
	}
	return render, true
}

// ListRendersHandler lists stored renders, newest first.
func (s *Server) ListRendersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 20
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				log.Warn("Invalid 'limit' parameter provided. Defaulting to 20.", "limit_param", limitStr)
			} else {
				limit = parsed
			}
		}

		infos, err := s.Store.List(limit)
		if err != nil {
			log.Error("Failed to list renders", "error", err)
			http.Error(w, "Failed to list renders", http.StatusInternalServerError)
			return
		}
		respondWithJSON(w, http.StatusOK, infos)
	}
}

// RefreshHandler runs one poll immediately instead of waiting for the next tick.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		log.Info("Manual refresh requested")
		render, err := s.Poller.Refresh(r.Context(), isDryRunFromContext(r))
		if err != nil {
			respondWithFormatError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, render)
	}
}

var errNoMatch = errors.New("no match is being played")

// introCard formats current_match.json. It returns errNoMatch when the file is absent.
func (s *Server) introCard(ctx context.Context) (overlay.IntroCard, error) {
	current, err := s.Live.LoadCurrentMatch(ctx)
	if err != nil {
		return overlay.IntroCard{}, err
	}
	if current == nil {
		return overlay.IntroCard{}, errNoMatch
	}
	return overlay.FormatIntroCard(current.IntroMatch())
}

// actionFeed formats data.json.
func (s *Server) actionFeed(ctx context.Context) (overlay.ActionFeed, error) {
	data, err := s.Live.LoadActions(ctx)
	if err != nil {
		return overlay.ActionFeed{}, err
	}
	b, err := data.Board()
	if err != nil {
		return overlay.ActionFeed{}, err
	}
	return overlay.FormatActions(b)
}

// CurrentMatchHandler returns the intro card of the match being played.
func (s *Server) CurrentMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := s.introCard(r.Context())
		if errors.Is(err, errNoMatch) {
			respondWithJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		if err != nil {
			respondWithFormatError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, card)
	}
}

// ActionsHandler returns the live match comms feed.
func (s *Server) ActionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := s.actionFeed(r.Context())
		if err != nil {
			respondWithFormatError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, feed)
	}
}

// renderRequest is a summary.json document with an optional live match.
type renderRequest struct {
	summary.Summary
	CurrentMatch *summary.CurrentMatch `json:"current_match"`
}

// RenderHandler formats a posted summary without storing it.
func (s *Server) RenderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req renderRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxSummaryBytes)).Decode(&req); err != nil {
			log.Warn("Failed to decode render request", "error", err)
			respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid summary JSON"})
			return
		}

		render, err := poller.Format(&req.Summary, req.CurrentMatch)
		if err != nil {
			respondWithFormatError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, render)
	}
}

// OverlayUpdatedHandler receives Pub/Sub push deliveries of new renders and
// posts them to Slack.
func (s *Server) OverlayUpdatedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received overlay update message", "bytes", len(bodyBytes))

		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"`
			} `json:"message"`
		}
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var render board.Render
		if err := s.pubsub.ProcessMessage(rawData, &render); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		// Posts that already went out for this render are skipped, so a
		// redelivery after a partial failure does not repeat them.
		if !s.deliveries.done(render.ID, "leaderboard") {
			if err := s.Notifier.SendLeaderboard(render.Ranks, isDryRun); err != nil {
				// Non-2xx makes Pub/Sub redeliver.
				http.Error(w, "Failed to post leaderboard", http.StatusBadGateway)
				return
			}
			if !isDryRun {
				s.deliveries.mark(render.ID, "leaderboard")
			}
		}
		if !s.deliveries.done(render.ID, "matches") {
			if err := s.Notifier.SendMatchHistory(render.Matches, isDryRun); err != nil {
				http.Error(w, "Failed to post match history", http.StatusBadGateway)
				return
			}
			if !isDryRun {
				s.deliveries.mark(render.ID, "matches")
			}
		}
		log.Info("Posted overlay update", "render_id", render.ID, "subscription", pubsubMsg.Subscription)
		w.Write([]byte("OK"))
	}
}

// LeaderboardCommandHandler answers the /leaderboard Slack command. The text
// "matches" switches to the match history, "match" to the intro card of the
// match being played and "actions" to the live match comms feed.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		log.Info("Received leaderboard command", "user", cmd.UserName, "text", cmd.Text)

		var msg any
		switch strings.ToLower(strings.TrimSpace(cmd.Text)) {
		case "match":
			card, err := s.introCard(r.Context())
			if errors.Is(err, errNoMatch) {
				respondWithSlackMsg(w, slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "No match is being played."})
				return
			}
			if err != nil {
				respondWithSlackMsg(w, slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "Could not read the current match: " + err.Error()})
				return
			}
			msg, err = s.Notifier.FormatIntroCardResponse(card)
			if err != nil {
				respondWithFormatFailure(w, err)
				return
			}
		case "actions":
			feed, err := s.actionFeed(r.Context())
			if err != nil {
				respondWithSlackMsg(w, slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "Could not read the match comms feed: " + err.Error()})
				return
			}
			msg, err = s.Notifier.FormatActionsResponse(feed)
			if err != nil {
				respondWithFormatFailure(w, err)
				return
			}
		case "matches":
			render, ok := s.commandRender(w)
			if !ok {
				return
			}
			if msg, err = s.Notifier.FormatMatchHistoryResponse(render.Matches); err != nil {
				respondWithFormatFailure(w, err)
				return
			}
		default:
			render, ok := s.commandRender(w)
			if !ok {
				return
			}
			if msg, err = s.Notifier.FormatLeaderboardResponse(render.Ranks); err != nil {
				respondWithFormatFailure(w, err)
				return
			}
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		slackMsg.ResponseType = slack.ResponseTypeInChannel
		respondWithSlackMsg(w, slackMsg.Msg)
	}
}

// commandRender loads the latest render for a slash command, answering the
// command itself when there is none.
func (s *Server) commandRender(w http.ResponseWriter) (*board.Render, bool) {
	render, err := s.Store.Latest()
	if errors.Is(err, board.ErrNoRender) {
		respondWithSlackMsg(w, slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "Nothing has been rendered yet."})
		return nil, false
	}
	if err != nil {
		http.Error(w, "Failed to load render", http.StatusInternalServerError)
		log.Error("Failed to load latest render", "error", err)
		return nil, false
	}
	return render, true
}

func respondWithFormatFailure(w http.ResponseWriter, err error) {
	http.Error(w, "Failed to format message", http.StatusInternalServerError)
	log.Error("Failed to format Slack message", "error", err)
}

// respondWithSlackMsg is a helper to write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Msg) {
	respondWithJSON(w, http.StatusOK, msg)
}

func respondWithJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondWithFormatError maps a refresh or render failure onto a status code.
func respondWithFormatError(w http.ResponseWriter, err error) {
	var verr *overlay.ValidationError
	if errors.As(err, &verr) {
		log.Warn("Summary rejected", "error", err)
		violations := make([]string, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			violations = append(violations, v.Error())
		}
		respondWithJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Violations: violations})
		return
	}
	log.Error("Failed to render summary", "error", err)
	respondWithJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
}
