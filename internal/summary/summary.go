package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/mauv0809/league-overlay/internal/overlay"
)

// Decode reads a summary.json document.
func Decode(r io.Reader) (*Summary, error) {
	var s Summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}
	return &s, nil
}

// DecodeCurrentMatch reads a current_match.json document.
func DecodeCurrentMatch(r io.Reader) (*CurrentMatch, error) {
	var m CurrentMatch
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode current match: %w", err)
	}
	return &m, nil
}

// Snapshot converts bots_by_rank into the leaderboard the overlay formats.
// Ratings are rounded to whole points.
func (s *Summary) Snapshot() overlay.Snapshot {
	snapshot := make(overlay.Snapshot, 0, len(s.BotsByRank))
	for _, b := range s.BotsByRank {
		e := overlay.RankEntry{
			ID:            b.BotID,
			CurrentRank:   b.CurRank,
			PreviousRank:  b.OldRank,
			Rating:        roundRating(b.MMR),
			TicketCount:   b.Tickets,
			ResultHistory: b.Wins,
		}
		if b.OldMMR != nil {
			old := roundRating(*b.OldMMR)
			e.PreviousRating = &old
		}
		snapshot = append(snapshot, e)
	}
	return snapshot
}

// MatchRecords converts matches into the records the match history formats.
// Blue is side A and orange is side B.
func (s *Summary) MatchRecords() []overlay.MatchRecord {
	records := make([]overlay.MatchRecord, 0, len(s.Matches))
	for _, m := range s.Matches {
		records = append(records, overlay.MatchRecord{
			Index:      m.Index,
			SideAGoals: m.BlueGoals,
			SideBGoals: m.OrangeGoals,
			SideANames: m.BlueNames,
			SideBNames: m.OrangeNames,
		})
	}
	return records
}

// ActiveMatch returns the participant names of each side, or nil when m is nil.
func (m *CurrentMatch) ActiveMatch() *overlay.ActiveMatch {
	if m == nil {
		return nil
	}
	active := &overlay.ActiveMatch{
		SideA: make([]string, 0, len(m.Blue)),
		SideB: make([]string, 0, len(m.Orange)),
	}
	for _, p := range m.Blue {
		active.SideA = append(active.SideA, p.Name)
	}
	for _, p := range m.Orange {
		active.SideB = append(active.SideB, p.Name)
	}
	return active
}

func roundRating(mmr float64) int {
	return int(math.Round(mmr))
}

// IntroMatch converts the participants into the contenders of the match intro card.
func (m *CurrentMatch) IntroMatch() overlay.IntroMatch {
	intro := overlay.IntroMatch{
		Map:   m.Map,
		SideA: make([]overlay.Contender, 0, len(m.Blue)),
		SideB: make([]overlay.Contender, 0, len(m.Orange)),
	}
	for _, p := range m.Blue {
		intro.SideA = append(intro.SideA, p.contender())
	}
	for _, p := range m.Orange {
		intro.SideB = append(intro.SideB, p.contender())
	}
	return intro
}

func (p Participant) contender() overlay.Contender {
	c := overlay.Contender{
		Name:        p.Name,
		Developer:   p.Developer,
		Description: p.Description,
		FunFact:     p.FunFact,
		Github:      p.Github,
		Language:    p.Language,
		Rank:        p.Rank,
		Rating:      roundRating(p.MMR),
	}
	if p.LogoPath != nil {
		c.LogoPath = *p.LogoPath
	}
	return c
}
