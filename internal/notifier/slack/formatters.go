package slack

import (
	"fmt"
	"math"
	"strings"

	"github.com/mauv0809/league-overlay/internal/overlay"
	"github.com/slack-go/slack"
)

// mrkdwnEscaper escapes the characters Slack reads as control sequences.
var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return mrkdwnEscaper.Replace(s)
}

// ticketsPerCell converts a ticket bar width into bar characters.
const ticketsPerCell = 4.0

// formatLeaderboard creates the Slack message for the leaderboard using Block Kit.
func (s *Notifier) formatLeaderboard(ranks []overlay.RankRecord) slack.Message {
	blocks := make([]slack.Block, 0, len(ranks)+2)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 League Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(ranks) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No bots ranked yet. Play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, r := range ranks {
		text := fmt.Sprintf("%s `#%d` %s *%s*%s\n> MMR %d %s | %s | %s",
			s.glyphs.Tier(r.Tier),
			r.Rank,
			s.glyphs.Movement(r.Movement),
			escape(r.ID),
			playingMarker(r.Class),
			r.Rating,
			r.DeltaText,
			s.winHistory(r.Wins),
			ticketBar(r.TicketWidth),
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatMatchHistory creates the Slack message for the latest matches using Block Kit.
func (s *Notifier) formatMatchHistory(rows []overlay.MatchRow) slack.Message {
	blocks := make([]slack.Block, 0, 3)

	headerText := slack.NewTextBlockObject("plain_text", "⚽ Match History ⚽", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No matches played yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(rows))
	for _, m := range rows {
		lines = append(lines, fmt.Sprintf("%d) %s%s  *%s VS %s*  %s%s",
			m.Number,
			crown(m.SideAWins()),
			escape(m.SideANames),
			m.SideAGoals,
			m.SideBGoals,
			escape(m.SideBNames),
			crownAfter(m.SideBWins()),
		))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) winHistory(w overlay.WinHistory) string {
	if w.Compressed() {
		return w.Summary
	}
	if len(w.Icons) == 0 {
		return "-"
	}
	var b strings.Builder
	for _, icon := range w.Icons {
		b.WriteString(s.glyphs.Result(icon))
	}
	return b.String()
}

func playingMarker(class overlay.RowClass) string {
	switch class {
	case overlay.RowPlayingForBlue:
		return " 🔷 playing"
	case overlay.RowPlayingForOrange:
		return " 🔶 playing"
	default:
		return ""
	}
}

func ticketBar(width float64) string {
	cells := int(math.Ceil(width / ticketsPerCell))
	if cells < 1 {
		cells = 1
	}
	return "🎟️ " + strings.Repeat("▰", cells)
}

func crown(won bool) string {
	if won {
		return "👑 "
	}
	return ""
}

func crownAfter(won bool) string {
	if won {
		return " 👑"
	}
	return ""
}

// formatActions creates the Slack message for the live match comms feed.
func (s *Notifier) formatActions(feed overlay.ActionFeed) slack.Message {
	blocks := make([]slack.Block, 0, 2)

	headerText := slack.NewTextBlockObject("plain_text", "📡 Match Comms 📡", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if !feed.Active && len(feed.Rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No round in progress.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(feed.Rows)+1)
	if !feed.Active {
		lines = append(lines, "_Round paused_")
	}
	for _, r := range feed.Rows {
		line := fmt.Sprintf("%s %s *%s* `%s`", teamMarker(r.Class), s.glyphs.Action(r.Action), escape(r.Name), r.Time)
		if r.TargetName != "" {
			line += " → " + escape(r.TargetName)
		}
		if r.Outdated {
			line += " _(outdated protocol)_"
		}
		lines = append(lines, line)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatIntroCard creates the Slack message introducing the match about to be played.
func (s *Notifier) formatIntroCard(card overlay.IntroCard) slack.Message {
	blocks := make([]slack.Block, 0, len(card.SideA)+len(card.SideB)+3)

	title := "🎮 Next Match 🎮"
	if card.Map != "" {
		title = "🎮 Next Match: " + card.Map + " 🎮"
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", title, true, false)))

	for i, side := range [][]overlay.ContenderCard{card.SideA, card.SideB} {
		if i > 0 {
			blocks = append(blocks, slack.NewDividerBlock())
		}
		for _, c := range side {
			blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", s.contenderText(c), false, false), nil, nil))
		}
	}

	return slack.NewBlockMessage(blocks...)
}

func (s *Notifier) contenderText(c overlay.ContenderCard) string {
	rank := "unranked"
	if c.Rank > 0 {
		rank = fmt.Sprintf("`#%d`", c.Rank)
	}
	text := fmt.Sprintf("%s %s *%s* %s | MMR %d", teamMarker(c.Class), s.glyphs.Tier(c.Tier), escape(c.Name), rank, c.Rating)

	var details []string
	if c.Developer != "" {
		details = append(details, "by "+escape(c.Developer))
	}
	if c.Language != "" {
		details = append(details, escape(c.Language))
	}
	if len(details) > 0 {
		text += "\n> " + strings.Join(details, " | ")
	}
	if c.Description != "" {
		text += "\n> " + escape(c.Description)
	}
	if c.FunFact != "" {
		text += "\n> _Fun fact: " + escape(c.FunFact) + "_"
	}
	return text
}

func teamMarker(class overlay.RowClass) string {
	if class == overlay.RowPlayingForOrange {
		return "🔶"
	}
	return "🔷"
}
