package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-overlay/internal/metrics"
	"github.com/mauv0809/league-overlay/internal/notifier"
	"github.com/mauv0809/league-overlay/internal/overlay"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts rendered boards to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
	glyphs    *GlyphSet
	// logOnly turns every send into a dry run.
	logOnly bool
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics, glyphs *GlyphSet) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics, glyphs)
}

// NewLogOnlyNotifier creates a Notifier for deployments without Slack
// credentials. Messages are formatted and logged but never posted.
func NewLogOnlyNotifier(metrics metrics.Metrics, glyphs *GlyphSet) *Notifier {
	n := NewNotifierWithAPI(nil, "", metrics, glyphs)
	n.logOnly = true
	return n
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls. A nil glyphs uses DefaultGlyphs.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics, glyphs *GlyphSet) *Notifier {
	if glyphs == nil {
		glyphs = DefaultGlyphs()
	}
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
		glyphs:    glyphs,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun || s.logOnly {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendLeaderboard posts the leaderboard to the configured channel.
func (s *Notifier) SendLeaderboard(ranks []overlay.RankRecord, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatLeaderboard(ranks), dryRun)
	return err
}

// SendMatchHistory posts the match history to the configured channel.
func (s *Notifier) SendMatchHistory(rows []overlay.MatchRow, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatMatchHistory(rows), dryRun)
	return err
}

// FormatLeaderboardResponse formats a leaderboard message for a slash command response.
func (s *Notifier) FormatLeaderboardResponse(ranks []overlay.RankRecord) (any, error) {
	return s.formatLeaderboard(ranks), nil
}

// FormatMatchHistoryResponse formats a match history message for a slash command response.
func (s *Notifier) FormatMatchHistoryResponse(rows []overlay.MatchRow) (any, error) {
	return s.formatMatchHistory(rows), nil
}

// FormatActionsResponse formats the match comms feed for a slash command response.
func (s *Notifier) FormatActionsResponse(feed overlay.ActionFeed) (any, error) {
	return s.formatActions(feed), nil
}

// FormatIntroCardResponse formats the match intro card for a slash command response.
func (s *Notifier) FormatIntroCardResponse(card overlay.IntroCard) (any, error) {
	return s.formatIntroCard(card), nil
}
