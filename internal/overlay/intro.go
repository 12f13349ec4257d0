package overlay

import (
	"fmt"

	"go.uber.org/multierr"
)

// notAvailable is what the league runner writes for a missing bot detail.
const notAvailable = "N/A"

// Contender is a bot taking part in the match about to be played.
type Contender struct {
	Name        string `json:"name" msgpack:"name"`
	Developer   string `json:"developer" msgpack:"developer"`
	Description string `json:"description" msgpack:"description"`
	FunFact     string `json:"fun_fact" msgpack:"fun_fact"`
	Github      string `json:"github" msgpack:"github"`
	Language    string `json:"language" msgpack:"language"`
	LogoPath    string `json:"logo_path" msgpack:"logo_path"`
	// Rank is 0 for a bot that is not ranked yet.
	Rank   int `json:"rank" msgpack:"rank"`
	Rating int `json:"rating" msgpack:"rating"`
}

// IntroMatch is the match about to be played.
type IntroMatch struct {
	Map   string      `json:"map" msgpack:"map"`
	SideA []Contender `json:"side_a" msgpack:"side_a"`
	SideB []Contender `json:"side_b" msgpack:"side_b"`
}

// ContenderCard is one bot's panel on the match intro card. Details the league
// runner did not know are empty.
type ContenderCard struct {
	Contender
	Class RowClass `json:"class" msgpack:"class"`
	Tier  Tier     `json:"tier" msgpack:"tier"`
}

// IntroCard is shown before a match starts.
type IntroCard struct {
	Map   string          `json:"map" msgpack:"map"`
	SideA []ContenderCard `json:"side_a" msgpack:"side_a"`
	SideB []ContenderCard `json:"side_b" msgpack:"side_b"`
}

// FormatIntroCard derives the panels of the match intro card.
func FormatIntroCard(m IntroMatch) (IntroCard, error) {
	if err := ValidateIntroMatch(m); err != nil {
		return IntroCard{}, err
	}
	return IntroCard{
		Map:   detail(m.Map),
		SideA: contenderCards(m.SideA, RowPlayingForBlue),
		SideB: contenderCards(m.SideB, RowPlayingForOrange),
	}, nil
}

func contenderCards(cs []Contender, class RowClass) []ContenderCard {
	cards := make([]ContenderCard, 0, len(cs))
	for _, c := range cs {
		c.Developer = detail(c.Developer)
		c.Description = detail(c.Description)
		c.FunFact = detail(c.FunFact)
		c.Github = detail(c.Github)
		c.Language = detail(c.Language)
		cards = append(cards, ContenderCard{
			Contender: c,
			Class:     class,
			Tier:      TierFor(c.Rating),
		})
	}
	return cards
}

func detail(s string) string {
	if s == notAvailable {
		return ""
	}
	return s
}

// ValidateIntroMatch checks the invariants FormatIntroCard relies on.
func ValidateIntroMatch(m IntroMatch) error {
	var err error
	sides := make(map[string]string)
	check := func(side string, cs []Contender) {
		for i, c := range cs {
			if c.Name == "" {
				err = multierr.Append(err, fmt.Errorf("%s contender %d: empty name", side, i))
				continue
			}
			if other, dup := sides[c.Name]; dup {
				err = multierr.Append(err, fmt.Errorf("%s contender %q: already on %s", side, c.Name, other))
			} else {
				sides[c.Name] = side
			}
			if c.Rank < 0 {
				err = multierr.Append(err, fmt.Errorf("%s contender %q: negative rank %d", side, c.Name, c.Rank))
			}
		}
	}
	check("blue", m.SideA)
	check("orange", m.SideB)
	return asValidationError(err)
}
