package board_test

import (
	"testing"
	"time"

	"github.com/mauv0809/league-overlay/internal/board"
	"github.com/mauv0809/league-overlay/internal/database"
	"github.com/mauv0809/league-overlay/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) board.Store {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	return board.New(db)
}

func sampleRender(at time.Time) *board.Render {
	ranks, _ := overlay.FormatRanks(overlay.Snapshot{
		{ID: "Nexto", CurrentRank: 1, Rating: 90, TicketCount: 32, ResultHistory: []bool{true, true}},
		{ID: "Kamael", CurrentRank: 2, Rating: 35, TicketCount: 2},
	}, &overlay.ActiveMatch{SideA: []string{"Kamael"}})
	matches, _ := overlay.FormatMatches([]overlay.MatchRecord{
		{Index: 0, SideAGoals: 2, SideBGoals: 1, SideANames: []string{"Nexto"}, SideBNames: []string{"Kamael"}},
	})
	return &board.Render{CreatedAt: at, Live: true, Ranks: ranks, Matches: matches}
}

func TestLatest_Empty(t *testing.T) {
	store := setupTestDB(t)

	_, err := store.Latest()
	assert.ErrorIs(t, err, board.ErrNoRender)
}

func TestSaveAndLatest(t *testing.T) {
	store := setupTestDB(t)

	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	older := sampleRender(base)
	require.NoError(t, store.Save(older))
	assert.NotEmpty(t, older.ID, "Save should assign an id")

	newer := sampleRender(base.Add(time.Minute))
	newer.Live = false
	require.NoError(t, store.Save(newer))

	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
	assert.True(t, latest.CreatedAt.Equal(newer.CreatedAt))
	assert.False(t, latest.Live)

	require.Len(t, latest.Ranks, 2)
	assert.Equal(t, "Nexto", latest.Ranks[0].ID)
	assert.Equal(t, overlay.TierQuantum, latest.Ranks[0].Tier)
	assert.Equal(t, []overlay.ResultIcon{overlay.IconWin, overlay.IconWin}, latest.Ranks[0].Wins.Icons)
	assert.Equal(t, overlay.RowPlayingForBlue, latest.Ranks[1].Class)
	assert.Equal(t, newer.Ranks[1].TicketWidth, latest.Ranks[1].TicketWidth)

	require.Len(t, latest.Matches, 1)
	assert.Equal(t, overlay.WinnerA, latest.Matches[0].Winner)
	assert.Equal(t, "Nexto", latest.Matches[0].SideANames)
}

func TestListAndPrune(t *testing.T) {
	store := setupTestDB(t)

	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 5; i++ {
		r := sampleRender(base.Add(time.Duration(i) * time.Minute))
		require.NoError(t, store.Save(r))
		ids = append(ids, r.ID)
	}

	infos, err := store.List(3)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, ids[4], infos[0].ID, "newest first")
	assert.Equal(t, 2, infos[0].EntryCount)
	assert.Equal(t, 1, infos[0].MatchCount)
	assert.True(t, infos[0].Live)

	removed, err := store.Prune(2)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	infos, err = store.List(10)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, ids[4], infos[0].ID)
	assert.Equal(t, ids[3], infos[1].ID)
}
