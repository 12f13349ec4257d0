package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/league-overlay/internal/metrics"
	"github.com/mauv0809/league-overlay/internal/overlay"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func sampleRanks(t *testing.T) []overlay.RankRecord {
	t.Helper()
	prev := 2
	prevRating := 70
	ranks, err := overlay.FormatRanks(overlay.Snapshot{
		{ID: "Nexto", CurrentRank: 1, PreviousRank: &prev, Rating: 82, PreviousRating: &prevRating, TicketCount: 100, ResultHistory: []bool{true, false, true}},
		{ID: "Kamael", CurrentRank: 2, Rating: 41, TicketCount: 3, ResultHistory: []bool{true, true, true, false, false, false, true}},
		{ID: "Atba", CurrentRank: 3, Rating: 5, TicketCount: 1},
	}, &overlay.ActiveMatch{SideB: []string{"Kamael"}})
	require.NoError(t, err)
	return ranks
}

func sectionText(t *testing.T, b slackapi.Block) string {
	t.Helper()
	section, ok := b.(*slackapi.SectionBlock)
	require.True(t, ok, "expected a section block, got %T", b)
	return section.Text.Text
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", metrics, nil)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.SlackNotifSent())
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics, nil)

	err := notifier.SendLeaderboard(sampleRanks(t), false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", metrics, nil)

	err := notifier.SendMatchHistory(nil, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 1, metrics.SlackNotifFailed())
}

func TestFormatLeaderboard(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), nil)

	msg := notifier.formatLeaderboard(sampleRanks(t))
	require.Len(t, msg.Blocks.BlockSet, 4)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "League Leaderboard")

	first := sectionText(t, msg.Blocks.BlockSet[1])
	assert.Contains(t, first, "🟡 `#1` 🔺 *Nexto*")
	assert.Contains(t, first, "MMR 82 (+12)")
	assert.Contains(t, first, "✅❌✅")
	assert.Contains(t, first, "▰▰▰▰▰▰▰▰▰▰")

	second := sectionText(t, msg.Blocks.BlockSet[2])
	assert.Contains(t, second, "🆕 *Kamael* 🔶 playing")
	assert.Contains(t, second, "4/7")
	assert.Contains(t, second, "(+)")

	third := sectionText(t, msg.Blocks.BlockSet[3])
	assert.Contains(t, third, "⚪ `#3`")
	assert.Contains(t, third, "| - |")
	assert.Contains(t, third, "🎟️ ▰")
}

func TestFormatLeaderboard_Empty(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), nil)

	msg := notifier.formatLeaderboard(nil)
	require.Len(t, msg.Blocks.BlockSet, 2)
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[1]), "No bots ranked yet")
}

func TestFormatMatchHistory(t *testing.T) {
	rows, err := overlay.FormatMatches([]overlay.MatchRecord{
		{Index: 0, SideAGoals: 3, SideBGoals: 1, SideANames: []string{"Nexto", "Seer"}, SideBNames: []string{"Atba"}},
		{Index: 1, SideAGoals: 2, SideBGoals: 2, SideANames: []string{"Kamael"}, SideBNames: []string{"Necto"}},
	})
	require.NoError(t, err)

	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), nil)
	msg := notifier.formatMatchHistory(rows)
	require.Len(t, msg.Blocks.BlockSet, 2)

	text := sectionText(t, msg.Blocks.BlockSet[1])
	assert.Contains(t, text, "1) 👑 Nexto, Seer  *3 VS 1*  Atba\n")
	assert.Contains(t, text, "2) Kamael  *2 VS 2*  Necto")
	assert.NotContains(t, text, "Necto 👑")
}

func TestFormatLeaderboardResponse_ReturnsSlackMessage(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), nil)

	resp, err := notifier.FormatLeaderboardResponse(sampleRanks(t))
	require.NoError(t, err)
	_, ok := resp.(slackapi.Message)
	assert.True(t, ok)
}

func TestLogOnlyNotifier_NeverPosts(t *testing.T) {
	metrics := metrics.NewMock()
	notifier := NewLogOnlyNotifier(metrics, nil)

	require.NoError(t, notifier.SendLeaderboard(sampleRanks(t), false))
	require.NoError(t, notifier.SendMatchHistory(nil, false))
	assert.Equal(t, 0, metrics.SlackNotifSent())
	assert.Equal(t, 0, metrics.SlackNotifFailed())
}

func TestFormatters_EscapeMrkdwn(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), nil)

	ranks, err := overlay.FormatRanks(overlay.Snapshot{
		{ID: "<!channel> & co", CurrentRank: 1, Rating: 10, TicketCount: 1},
	}, nil)
	require.NoError(t, err)
	text := sectionText(t, notifier.formatLeaderboard(ranks).Blocks.BlockSet[1])
	assert.Contains(t, text, "*&lt;!channel&gt; &amp; co*")
	assert.NotContains(t, text, "<!channel>")

	rows, err := overlay.FormatMatches([]overlay.MatchRecord{
		{Index: 0, SideANames: []string{"<@U123>"}, SideBNames: []string{"R&D"}},
	})
	require.NoError(t, err)
	text = sectionText(t, notifier.formatMatchHistory(rows).Blocks.BlockSet[1])
	assert.Contains(t, text, "&lt;@U123&gt;")
	assert.Contains(t, text, "R&amp;D")
}

func TestFormatActions(t *testing.T) {
	feed, err := overlay.FormatActions(overlay.ActionBoard{
		Active: true,
		Names:  []string{"Nexto", "Kamael"},
		Actions: []overlay.BotAction{
			{Index: 0, Team: overlay.TeamBlue, Action: overlay.ActionBall, Time: 10.04},
			{Index: 1, Team: overlay.TeamOrange, Action: overlay.ActionDemo, Time: 11, Target: new(int), Outdated: true},
		},
	})
	require.NoError(t, err)

	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), nil)
	resp, err := notifier.FormatActionsResponse(feed)
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 2)

	text := sectionText(t, msg.Blocks.BlockSet[1])
	assert.Contains(t, text, "🔷 ⚽ *Nexto* `10`")
	assert.Contains(t, text, "🔶 💣 *Kamael* `11` → Nexto _(outdated protocol)_")
	assert.NotContains(t, text, "Round paused")
}

func TestFormatActions_Idle(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), nil)
	msg := notifier.formatActions(overlay.ActionFeed{})
	require.Len(t, msg.Blocks.BlockSet, 2)
	assert.Contains(t, sectionText(t, msg.Blocks.BlockSet[1]), "No round in progress")
}

func TestFormatIntroCard(t *testing.T) {
	card, err := overlay.FormatIntroCard(overlay.IntroMatch{
		Map:   "Mannfield",
		SideA: []overlay.Contender{{Name: "Nexto", Developer: "Rolv", Language: "python", FunFact: "Beat pros", Rank: 1, Rating: 90}},
		SideB: []overlay.Contender{{Name: "Atba", Developer: "N/A", Rating: 5}},
	})
	require.NoError(t, err)

	notifier := NewNotifierWithAPI(nil, "C123", metrics.NewMock(), nil)
	resp, err := notifier.FormatIntroCardResponse(card)
	require.NoError(t, err)
	msg, ok := resp.(slackapi.Message)
	require.True(t, ok)
	require.Len(t, msg.Blocks.BlockSet, 4)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Mannfield")

	blue := sectionText(t, msg.Blocks.BlockSet[1])
	assert.Contains(t, blue, "🔷 🟡 *Nexto* `#1` | MMR 90")
	assert.Contains(t, blue, "> by Rolv | python")
	assert.Contains(t, blue, "_Fun fact: Beat pros_")

	_, ok = msg.Blocks.BlockSet[2].(*slackapi.DividerBlock)
	assert.True(t, ok)

	orange := sectionText(t, msg.Blocks.BlockSet[3])
	assert.Contains(t, orange, "🔶 ⚪ *Atba* unranked | MMR 5")
	assert.NotContains(t, orange, "by ")
}
