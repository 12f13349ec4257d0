package overlay

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"go.uber.org/multierr"
)

// Action is what a bot announced it is about to do over match comms.
type Action string

const (
	ActionBall   Action = "BALL"
	ActionBoost  Action = "BOOST"
	ActionDemo   Action = "DEMO"
	ActionReady  Action = "READY"
	ActionDefend Action = "DEFEND"
)

// Actions lists every action a bot can announce.
var Actions = []Action{ActionBall, ActionBoost, ActionDemo, ActionReady, ActionDefend}

func (a Action) Valid() bool {
	switch a {
	case ActionBall, ActionBoost, ActionDemo, ActionReady, ActionDefend:
		return true
	}
	return false
}

// Team numbers as reported by the game.
const (
	TeamBlue   = 0
	TeamOrange = 1
)

// BotAction is the latest action reported by the car at Index.
type BotAction struct {
	Index  int     `json:"index" msgpack:"index"`
	Name   string  `json:"name" msgpack:"name"`
	Team   int     `json:"team" msgpack:"team"`
	Action Action  `json:"action" msgpack:"action"`
	Time   float64 `json:"time" msgpack:"time"`
	// Target is a car index for DEMO and a boost pad index for BOOST.
	Target *int `json:"target,omitempty" msgpack:"target"`
	// Outdated is set when the bot speaks another protocol version.
	Outdated bool `json:"outdated" msgpack:"outdated"`
}

// ActionBoard is the live action feed of the match being played.
type ActionBoard struct {
	Active  bool        `json:"active" msgpack:"active"`
	Names   []string    `json:"names" msgpack:"names"`
	Actions []BotAction `json:"actions" msgpack:"actions"`
}

// ActionRow is one car's line in the action feed.
type ActionRow struct {
	Class      RowClass `json:"class" msgpack:"class"`
	Index      int      `json:"index" msgpack:"index"`
	Name       string   `json:"name" msgpack:"name"`
	Action     Action   `json:"action" msgpack:"action"`
	Time       string   `json:"time" msgpack:"time"`
	TargetName string   `json:"target_name,omitempty" msgpack:"target_name"`
	Outdated   bool     `json:"outdated" msgpack:"outdated"`
}

// ActionFeed is the formatted action feed.
type ActionFeed struct {
	Active bool        `json:"active" msgpack:"active"`
	Rows   []ActionRow `json:"rows" msgpack:"rows"`
}

// FormatActions orders the feed by car index and resolves car names. A car
// index listed in Names wins over the name sent with the action.
func FormatActions(b ActionBoard) (ActionFeed, error) {
	if err := ValidateActions(b); err != nil {
		return ActionFeed{}, err
	}

	actions := append([]BotAction(nil), b.Actions...)
	sort.Slice(actions, func(i, j int) bool { return actions[i].Index < actions[j].Index })

	rows := make([]ActionRow, 0, len(actions))
	for _, a := range actions {
		row := ActionRow{
			Class:    RowPlayingForBlue,
			Index:    a.Index,
			Name:     carName(b.Names, a.Index, a.Name),
			Action:   a.Action,
			Time:     strconv.FormatFloat(math.Round(a.Time*10)/10, 'f', -1, 64),
			Outdated: a.Outdated,
		}
		if a.Team == TeamOrange {
			row.Class = RowPlayingForOrange
		}
		if a.Action == ActionDemo && a.Target != nil {
			row.TargetName = carName(b.Names, *a.Target, "")
		}
		rows = append(rows, row)
	}
	return ActionFeed{Active: b.Active, Rows: rows}, nil
}

func carName(names []string, index int, fallback string) string {
	if index >= 0 && index < len(names) && names[index] != "" {
		return names[index]
	}
	return fallback
}

// ValidateActions checks the invariants FormatActions relies on.
func ValidateActions(b ActionBoard) error {
	var err error
	seen := make(map[int]struct{}, len(b.Actions))
	for _, a := range b.Actions {
		if a.Index < 0 {
			err = multierr.Append(err, fmt.Errorf("action: negative car index %d", a.Index))
		} else if _, dup := seen[a.Index]; dup {
			err = multierr.Append(err, fmt.Errorf("action: car %d reported twice", a.Index))
		} else {
			seen[a.Index] = struct{}{}
		}
		if !a.Action.Valid() {
			err = multierr.Append(err, fmt.Errorf("action: car %d: unknown action %q", a.Index, a.Action))
		}
		if a.Team != TeamBlue && a.Team != TeamOrange {
			err = multierr.Append(err, fmt.Errorf("action: car %d: unknown team %d", a.Index, a.Team))
		}
		if math.IsNaN(a.Time) || math.IsInf(a.Time, 0) {
			err = multierr.Append(err, fmt.Errorf("action: car %d: time %v is not finite", a.Index, a.Time))
		}
	}
	return asValidationError(err)
}
