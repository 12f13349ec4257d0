package summary

// Rating is one bot's standing in a ranking, as produced by the rating system.
type Rating struct {
	BotID string
	MMR   float64
	Sigma float64
}

// PlayedMatch is a finished match as recorded by the league runner.
type PlayedMatch struct {
	Blue        []string
	Orange      []string
	BlueGoals   int
	OrangeGoals int
}

// BuildInput holds everything needed to assemble a summary.
type BuildInput struct {
	// Current and Previous are sorted best first. Previous is the ranking
	// before the first of Matches was played.
	Current  []Rating
	Previous []Rating
	// Matches are the latest matches, oldest first.
	Matches []PlayedMatch
	Tickets map[string]float64
	// NewBotTickets is used for bots with no entry in Tickets.
	NewBotTickets float64
	// DisplayName maps a bot id to the name shown on the overlay. Identity when nil.
	DisplayName func(botID string) string
}

// Build assembles a summary the same way the league runner does: each bot's
// win history comes from the given matches and its previous rank and rating
// from the older ranking.
func Build(in BuildInput) *Summary {
	name := in.DisplayName
	if name == nil {
		name = func(id string) string { return id }
	}

	s := &Summary{
		Matches:    make([]Match, 0, len(in.Matches)),
		BotsByRank: make([]Bot, 0, len(in.Current)),
	}

	wins := make(map[string][]bool)
	for i, m := range in.Matches {
		s.Matches = append(s.Matches, Match{
			Index:       i,
			BlueNames:   mapNames(m.Blue, name),
			OrangeNames: mapNames(m.Orange, name),
			BlueGoals:   m.BlueGoals,
			OrangeGoals: m.OrangeGoals,
		})
		for _, bot := range m.Blue {
			wins[bot] = append(wins[bot], m.BlueGoals > m.OrangeGoals)
		}
		for _, bot := range m.Orange {
			wins[bot] = append(wins[bot], m.BlueGoals < m.OrangeGoals)
		}
	}

	previous := make(map[string]int, len(in.Previous))
	for i, r := range in.Previous {
		previous[r.BotID] = i
	}

	for i, r := range in.Current {
		bot := Bot{
			BotID:   name(r.BotID),
			MMR:     r.MMR,
			Sigma:   r.Sigma,
			CurRank: i + 1,
			Tickets: in.NewBotTickets,
			Wins:    wins[r.BotID],
		}
		if bot.Wins == nil {
			bot.Wins = []bool{}
		}
		if j, ok := previous[r.BotID]; ok {
			rank := j + 1
			mmr := in.Previous[j].MMR
			bot.OldRank = &rank
			bot.OldMMR = &mmr
		}
		if t, ok := in.Tickets[r.BotID]; ok && t != 0 {
			bot.Tickets = t
		}
		s.BotsByRank = append(s.BotsByRank, bot)
	}
	return s
}

func mapNames(ids []string, name func(string) string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, name(id))
	}
	return names
}
