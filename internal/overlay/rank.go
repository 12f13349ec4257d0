package overlay

import (
	"fmt"
	"math"
)

const (
	// maxTicketWidth is the bar width of the competitor with the most tickets.
	maxTicketWidth = 40.0
	minTicketWidth = 1.0

	// deltaSaturation is the rating change at which the delta color is fully saturated.
	deltaSaturation = 20.0

	// maxWinIcons is the longest history still drawn as individual icons.
	maxWinIcons = 6
)

// FormatRanks derives one RankRecord per entry of the snapshot, in order.
// active may be nil when no match is being played. The whole snapshot is
// rejected with a ValidationError if any entry breaks an invariant.
func FormatRanks(s Snapshot, active *ActiveMatch) ([]RankRecord, error) {
	if err := ValidateSnapshot(s, active); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return []RankRecord{}, nil
	}

	maxLogTickets := math.Log(maxTickets(s))
	sideA, sideB := active.sides()

	records := make([]RankRecord, 0, len(s))
	for i, e := range s {
		text, color, err := ratingDelta(e.Rating, e.PreviousRating)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.ID, err)
		}

		row := parity(i)
		class := row
		if _, ok := sideA[e.ID]; ok {
			class = RowPlayingForBlue
		} else if _, ok := sideB[e.ID]; ok {
			class = RowPlayingForOrange
		}

		records = append(records, RankRecord{
			Class:       class,
			Parity:      row,
			Tier:        TierFor(e.Rating),
			Movement:    MovementFor(e.PreviousRank, e.CurrentRank),
			ID:          e.ID,
			Rank:        e.CurrentRank,
			Rating:      e.Rating,
			DeltaText:   text,
			DeltaColor:  color,
			Wins:        winHistory(e.ResultHistory),
			TicketWidth: TicketWidth(e.TicketCount, maxLogTickets),
		})
	}
	return records, nil
}

func (a *ActiveMatch) sides() (map[string]struct{}, map[string]struct{}) {
	sideA := map[string]struct{}{}
	sideB := map[string]struct{}{}
	if a == nil {
		return sideA, sideB
	}
	for _, id := range a.SideA {
		sideA[id] = struct{}{}
	}
	for _, id := range a.SideB {
		sideB[id] = struct{}{}
	}
	return sideA, sideB
}

func maxTickets(s Snapshot) float64 {
	m := s[0].TicketCount
	for _, e := range s[1:] {
		if e.TicketCount > m {
			m = e.TicketCount
		}
	}
	return m
}

// TicketWidth scales a ticket count logarithmically against the snapshot's
// largest count, given as its natural log. The result is never below 1.
func TicketWidth(tickets, maxLogTickets float64) float64 {
	if maxLogTickets <= 0 {
		// Every competitor holds a single ticket.
		return maxTicketWidth
	}
	return math.Max(maxTicketWidth*math.Log(tickets)/maxLogTickets, minTicketWidth)
}

func ratingDelta(rating int, previous *int) (string, string, error) {
	if previous == nil {
		return "(+)", ColorNewEntry, nil
	}

	delta := rating - *previous
	if delta >= 0 {
		color, err := Lerp(ColorNeutral, ColorPositive, math.Min(1.0, float64(delta)/deltaSaturation))
		return fmt.Sprintf("(+%d)", delta), color, err
	}
	color, err := Lerp(ColorNeutral, ColorNegative, math.Min(1.0, float64(-delta)/deltaSaturation))
	return fmt.Sprintf("(%d)", delta), color, err
}

func winHistory(results []bool) WinHistory {
	if len(results) > maxWinIcons {
		wins := 0
		for _, won := range results {
			if won {
				wins++
			}
		}
		return WinHistory{Summary: fmt.Sprintf("%d/%d", wins, len(results))}
	}

	icons := make([]ResultIcon, 0, len(results))
	for _, won := range results {
		if won {
			icons = append(icons, IconWin)
		} else {
			icons = append(icons, IconLoss)
		}
	}
	return WinHistory{Icons: icons}
}
