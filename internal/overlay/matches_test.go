package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMatches(t *testing.T) {
	matches := []MatchRecord{
		{Index: 0, SideAGoals: 3, SideBGoals: 1, SideANames: []string{"Botimus", "Kamael"}, SideBNames: []string{"Nexto"}},
		{Index: 1, SideAGoals: 0, SideBGoals: 2, SideANames: []string{"Atba"}, SideBNames: []string{"Necto", "Seer"}},
		{Index: 2, SideAGoals: 4, SideBGoals: 4},
	}

	rows, err := FormatMatches(matches)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, MatchRow{
		Parity:     RowOdd,
		Number:     1,
		Winner:     WinnerA,
		SideAGoals: "3",
		SideBGoals: "1",
		SideANames: "Botimus, Kamael",
		SideBNames: "Nexto",
	}, rows[0])
	assert.True(t, rows[0].SideAWins())
	assert.False(t, rows[0].SideBWins())

	assert.Equal(t, RowEven, rows[1].Parity)
	assert.Equal(t, 2, rows[1].Number)
	assert.Equal(t, WinnerB, rows[1].Winner)
	assert.Equal(t, "Necto, Seer", rows[1].SideBNames)

	assert.Equal(t, RowOdd, rows[2].Parity)
	assert.Equal(t, WinnerTie, rows[2].Winner)
	assert.False(t, rows[2].SideAWins())
	assert.False(t, rows[2].SideBWins())
	assert.Equal(t, "", rows[2].SideANames)
}

func TestFormatMatches_Empty(t *testing.T) {
	rows, err := FormatMatches(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFormatMatches_Validation(t *testing.T) {
	tests := []struct {
		name  string
		match MatchRecord
	}{
		{"negative side A goals", MatchRecord{Index: 0, SideAGoals: -1}},
		{"negative side B goals", MatchRecord{Index: 0, SideBGoals: -3}},
		{"negative index", MatchRecord{Index: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := MatchRecord{Index: 0, SideAGoals: 1}
			rows, err := FormatMatches([]MatchRecord{ok, tt.match})
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, rows)
		})
	}
}
