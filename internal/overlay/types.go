package overlay

// RankEntry is one competitor in a leaderboard snapshot.
type RankEntry struct {
	ID             string  `json:"id" msgpack:"id"`
	CurrentRank    int     `json:"current_rank" msgpack:"current_rank"`
	PreviousRank   *int    `json:"previous_rank,omitempty" msgpack:"previous_rank"`
	Rating         int     `json:"rating" msgpack:"rating"`
	PreviousRating *int    `json:"previous_rating,omitempty" msgpack:"previous_rating"`
	TicketCount    float64 `json:"ticket_count" msgpack:"ticket_count"`
	// ResultHistory is chronological, true is a win.
	ResultHistory []bool `json:"result_history" msgpack:"result_history"`
}

// Snapshot is a leaderboard sorted by CurrentRank ascending.
type Snapshot []RankEntry

// ActiveMatch holds the ids of the competitors playing right now.
type ActiveMatch struct {
	SideA []string `json:"side_a" msgpack:"side_a"`
	SideB []string `json:"side_b" msgpack:"side_b"`
}

// MatchRecord is one completed match.
type MatchRecord struct {
	Index      int      `json:"index" msgpack:"index"`
	SideAGoals int      `json:"side_a_goals" msgpack:"side_a_goals"`
	SideBGoals int      `json:"side_b_goals" msgpack:"side_b_goals"`
	SideANames []string `json:"side_a_names" msgpack:"side_a_names"`
	SideBNames []string `json:"side_b_names" msgpack:"side_b_names"`
}

// WinHistory is either a list of icons or, for long histories, a "wins/total" summary.
type WinHistory struct {
	Icons   []ResultIcon `json:"icons,omitempty" msgpack:"icons"`
	Summary string       `json:"summary,omitempty" msgpack:"summary"`
}

// Compressed reports whether the history was collapsed into a summary string.
func (w WinHistory) Compressed() bool {
	return w.Summary != ""
}

// RankRecord holds everything the template layer needs to draw one leaderboard row.
type RankRecord struct {
	Class       RowClass   `json:"class" msgpack:"class"`
	Parity      RowClass   `json:"parity" msgpack:"parity"`
	Tier        Tier       `json:"tier" msgpack:"tier"`
	Movement    Movement   `json:"movement" msgpack:"movement"`
	ID          string     `json:"id" msgpack:"id"`
	Rank        int        `json:"rank" msgpack:"rank"`
	Rating      int        `json:"rating" msgpack:"rating"`
	DeltaText   string     `json:"delta_text" msgpack:"delta_text"`
	DeltaColor  string     `json:"delta_color" msgpack:"delta_color"`
	Wins        WinHistory `json:"wins" msgpack:"wins"`
	TicketWidth float64    `json:"ticket_width" msgpack:"ticket_width"`
}

// MatchRow holds everything the template layer needs to draw one match history row.
type MatchRow struct {
	Parity     RowClass `json:"parity" msgpack:"parity"`
	Number     int      `json:"number" msgpack:"number"`
	Winner     Winner   `json:"winner" msgpack:"winner"`
	SideAGoals string   `json:"side_a_goals" msgpack:"side_a_goals"`
	SideBGoals string   `json:"side_b_goals" msgpack:"side_b_goals"`
	SideANames string   `json:"side_a_names" msgpack:"side_a_names"`
	SideBNames string   `json:"side_b_names" msgpack:"side_b_names"`
}

// SideAWins reports whether side A's crown should be shown.
func (m MatchRow) SideAWins() bool { return m.Winner == WinnerA }

// SideBWins reports whether side B's crown should be shown.
func (m MatchRow) SideBWins() bool { return m.Winner == WinnerB }
