package notifier

import "github.com/mauv0809/league-overlay/internal/overlay"

// Notifier defines a high-level interface for publishing rendered boards.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	SendLeaderboard(ranks []overlay.RankRecord, dryRun bool) error
	SendMatchHistory(rows []overlay.MatchRow, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(ranks []overlay.RankRecord) (any, error)
	FormatMatchHistoryResponse(rows []overlay.MatchRow) (any, error)
	FormatActionsResponse(feed overlay.ActionFeed) (any, error)
	FormatIntroCardResponse(card overlay.IntroCard) (any, error)
}
