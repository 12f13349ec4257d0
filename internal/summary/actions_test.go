package summary

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauv0809/league-overlay/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleActions = `{
    "actions": {
        "0": {"action": {"type": "BALL", "time": 41.2, "direction": [0, 1, 0]}, "name": "Nexto", "team": 0, "time": 40.93, "outdated": false},
        "3": {"action": {"type": "DEMO", "time": 42.0, "target": 0}, "name": "Kamael", "team": 1, "time": 41.52, "outdated": true}
    },
    "active": true,
    "names": ["Nexto", "Seer", "Botimus", "Kamael"]
}`

func TestDecodeActions(t *testing.T) {
	d, err := DecodeActions(strings.NewReader(sampleActions))
	require.NoError(t, err)
	assert.True(t, d.Active)
	assert.Len(t, d.Names, 4)
	require.Contains(t, d.Actions, "3")
	assert.Equal(t, "DEMO", d.Actions["3"].Action.Type)
	require.NotNil(t, d.Actions["3"].Action.Target)

	board, err := d.Board()
	require.NoError(t, err)

	feed, err := overlay.FormatActions(board)
	require.NoError(t, err)
	require.Len(t, feed.Rows, 2)
	assert.Equal(t, overlay.ActionBall, feed.Rows[0].Action)
	assert.Equal(t, "40.9", feed.Rows[0].Time)
	assert.Equal(t, overlay.RowPlayingForOrange, feed.Rows[1].Class)
	assert.Equal(t, "Nexto", feed.Rows[1].TargetName)
	assert.True(t, feed.Rows[1].Outdated)
}

func TestActionsBoard_BadIndex(t *testing.T) {
	d, err := DecodeActions(strings.NewReader(`{"actions": {"first": {"action": {"type": "BALL"}}}}`))
	require.NoError(t, err)
	_, err = d.Board()
	assert.Error(t, err)
}

func TestDirSource_LoadActions(t *testing.T) {
	dir := t.TempDir()
	src := NewDirSource(dir)

	idle, err := src.LoadActions(context.Background())
	require.NoError(t, err)
	assert.False(t, idle.Active)
	assert.Empty(t, idle.Actions)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ActionsFile), []byte(sampleActions), 0o644))
	d, err := src.LoadActions(context.Background())
	require.NoError(t, err)
	assert.Len(t, d.Actions, 2)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ActionsFile), []byte("{"), 0o644))
	_, err = src.LoadActions(context.Background())
	assert.Error(t, err)
}

func TestCurrentMatch_IntroMatch(t *testing.T) {
	current, err := DecodeCurrentMatch(strings.NewReader(sampleCurrentMatch))
	require.NoError(t, err)

	card, err := overlay.FormatIntroCard(current.IntroMatch())
	require.NoError(t, err)
	assert.Equal(t, "DFHStadium", card.Map)
	require.Len(t, card.SideA, 1)
	assert.Equal(t, "Rolv", card.SideA[0].Developer)
	assert.Equal(t, 85, card.SideA[0].Rating)
	assert.Equal(t, overlay.TierQuantum, card.SideA[0].Tier)
	require.Len(t, card.SideB, 1)
	assert.Empty(t, card.SideB[0].LogoPath)
}
