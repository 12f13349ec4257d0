package overlay

import (
	"strconv"
	"strings"
)

const nameSeparator = ", "

// FormatMatches derives one MatchRow per match, in order. The whole list is
// rejected with a ValidationError if any match breaks an invariant.
func FormatMatches(ms []MatchRecord) ([]MatchRow, error) {
	if err := ValidateMatches(ms); err != nil {
		return nil, err
	}

	rows := make([]MatchRow, 0, len(ms))
	for i, m := range ms {
		rows = append(rows, MatchRow{
			Parity:     parity(i),
			Number:     m.Index + 1,
			Winner:     winnerOf(m.SideAGoals, m.SideBGoals),
			SideAGoals: strconv.Itoa(m.SideAGoals),
			SideBGoals: strconv.Itoa(m.SideBGoals),
			SideANames: strings.Join(m.SideANames, nameSeparator),
			SideBNames: strings.Join(m.SideBNames, nameSeparator),
		})
	}
	return rows, nil
}

func winnerOf(a, b int) Winner {
	switch {
	case a > b:
		return WinnerA
	case b > a:
		return WinnerB
	default:
		return WinnerTie
	}
}
