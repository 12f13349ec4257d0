package summary

// Summary mirrors the summary.json file written by the league runner.
type Summary struct {
	Matches    []Match `json:"matches" msgpack:"matches"`
	BotsByRank []Bot   `json:"bots_by_rank" msgpack:"bots_by_rank"`
}

// Bot is one row of bots_by_rank.
type Bot struct {
	BotID   string   `json:"bot_id" msgpack:"bot_id"`
	MMR     float64  `json:"mmr" msgpack:"mmr"`
	OldMMR  *float64 `json:"old_mmr" msgpack:"old_mmr"`
	Sigma   float64  `json:"sigma" msgpack:"sigma"`
	CurRank int      `json:"cur_rank" msgpack:"cur_rank"`
	OldRank *int     `json:"old_rank" msgpack:"old_rank"`
	Tickets float64  `json:"tickets" msgpack:"tickets"`
	Wins    []bool   `json:"wins" msgpack:"wins"`
}

// Match is one row of matches.
type Match struct {
	Index       int      `json:"index" msgpack:"index"`
	BlueNames   []string `json:"blue_names" msgpack:"blue_names"`
	OrangeNames []string `json:"orange_names" msgpack:"orange_names"`
	BlueGoals   int      `json:"blue_goals" msgpack:"blue_goals"`
	OrangeGoals int      `json:"orange_goals" msgpack:"orange_goals"`
}

// CurrentMatch mirrors current_match.json.
type CurrentMatch struct {
	Blue   []Participant `json:"blue"`
	Orange []Participant `json:"orange"`
	Map    string        `json:"map"`
}

// Participant is a bot taking part in the current match. Only the name is
// used for highlighting; the remaining fields feed the match intro card.
type Participant struct {
	Name        string  `json:"name"`
	ConfigPath  string  `json:"config_path,omitempty"`
	LogoPath    *string `json:"logo_path,omitempty"`
	Developer   string  `json:"developer,omitempty"`
	Description string  `json:"description,omitempty"`
	FunFact     string  `json:"fun_fact,omitempty"`
	Github      string  `json:"github,omitempty"`
	Language    string  `json:"language,omitempty"`
	Rank        int     `json:"rank,omitempty"`
	MMR         float64 `json:"mmr,omitempty"`
}
