package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	in := BuildInput{
		Current: []Rating{
			{BotID: "nexto_bot", MMR: 60, Sigma: 2},
			{BotID: "kamael_bot", MMR: 45, Sigma: 3},
			{BotID: "rookie_bot", MMR: 25, Sigma: 8},
		},
		Previous: []Rating{
			{BotID: "kamael_bot", MMR: 50},
			{BotID: "nexto_bot", MMR: 55},
		},
		Matches: []PlayedMatch{
			{Blue: []string{"nexto_bot"}, Orange: []string{"kamael_bot"}, BlueGoals: 2, OrangeGoals: 0},
			{Blue: []string{"kamael_bot"}, Orange: []string{"nexto_bot"}, BlueGoals: 1, OrangeGoals: 1},
		},
		Tickets:       map[string]float64{"nexto_bot": 16, "kamael_bot": 0},
		NewBotTickets: 4,
		DisplayName:   func(id string) string { return strings.TrimSuffix(id, "_bot") },
	}

	s := Build(in)

	require.Len(t, s.Matches, 2)
	assert.Equal(t, 1, s.Matches[1].Index)
	assert.Equal(t, []string{"nexto"}, s.Matches[0].BlueNames)

	require.Len(t, s.BotsByRank, 3)
	nexto := s.BotsByRank[0]
	assert.Equal(t, "nexto", nexto.BotID)
	assert.Equal(t, 1, nexto.CurRank)
	require.NotNil(t, nexto.OldRank)
	assert.Equal(t, 2, *nexto.OldRank)
	assert.Equal(t, 55.0, *nexto.OldMMR)
	assert.Equal(t, []bool{true, false}, nexto.Wins, "a draw counts as a loss for both sides")
	assert.Equal(t, 16.0, nexto.Tickets)

	kamael := s.BotsByRank[1]
	assert.Equal(t, []bool{false, false}, kamael.Wins)
	assert.Equal(t, 4.0, kamael.Tickets, "zero tickets fall back to the new bot count")

	rookie := s.BotsByRank[2]
	assert.Nil(t, rookie.OldRank)
	assert.Nil(t, rookie.OldMMR)
	assert.Equal(t, []bool{}, rookie.Wins)
	assert.Equal(t, 3, rookie.CurRank)
}
