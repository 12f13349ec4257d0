package overlay

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// ValidateSnapshot checks the invariants FormatRanks relies on.
func ValidateSnapshot(s Snapshot, active *ActiveMatch) error {
	var err error
	ids := make(map[string]int, len(s))
	ranks := make(map[int]string, len(s))

	for i, e := range s {
		if e.ID == "" {
			err = multierr.Append(err, fmt.Errorf("entry %d: empty id", i))
		} else if prev, dup := ids[e.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("entry %d: id %q already used by entry %d", i, e.ID, prev))
		} else {
			ids[e.ID] = i
		}

		if e.CurrentRank < 1 {
			err = multierr.Append(err, fmt.Errorf("entry %q: current rank %d is not positive", e.ID, e.CurrentRank))
		} else if other, dup := ranks[e.CurrentRank]; dup {
			err = multierr.Append(err, fmt.Errorf("entry %q: current rank %d already held by %q", e.ID, e.CurrentRank, other))
		} else {
			ranks[e.CurrentRank] = e.ID
		}
		if i > 0 && e.CurrentRank >= 1 && e.CurrentRank < s[i-1].CurrentRank {
			err = multierr.Append(err, fmt.Errorf("entry %q: current rank %d listed after rank %d", e.ID, e.CurrentRank, s[i-1].CurrentRank))
		}

		if e.PreviousRank != nil && *e.PreviousRank < 1 {
			err = multierr.Append(err, fmt.Errorf("entry %q: previous rank %d is not positive", e.ID, *e.PreviousRank))
		}

		if math.IsNaN(e.TicketCount) || math.IsInf(e.TicketCount, 0) || e.TicketCount < 1 {
			err = multierr.Append(err, fmt.Errorf("entry %q: ticket count %v must be at least 1", e.ID, e.TicketCount))
		}
	}

	if active != nil {
		sideA := make(map[string]struct{}, len(active.SideA))
		for _, id := range active.SideA {
			sideA[id] = struct{}{}
		}
		for _, id := range active.SideB {
			if _, ok := sideA[id]; ok {
				err = multierr.Append(err, fmt.Errorf("active match: %q is on both sides", id))
			}
		}
	}

	return asValidationError(err)
}

// ValidateMatches checks the invariants FormatMatches relies on.
func ValidateMatches(ms []MatchRecord) error {
	var err error
	for i, m := range ms {
		if m.Index < 0 {
			err = multierr.Append(err, fmt.Errorf("match %d: negative index %d", i, m.Index))
		}
		if m.SideAGoals < 0 {
			err = multierr.Append(err, fmt.Errorf("match %d: negative side A goals %d", i, m.SideAGoals))
		}
		if m.SideBGoals < 0 {
			err = multierr.Append(err, fmt.Errorf("match %d: negative side B goals %d", i, m.SideBGoals))
		}
	}
	return asValidationError(err)
}
