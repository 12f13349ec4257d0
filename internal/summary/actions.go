package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mauv0809/league-overlay/internal/overlay"
)

// ActionsFile is written by the match comms tracker while a match is played.
const ActionsFile = "data.json"

// ActionsData mirrors data.json. Actions is keyed by car index.
type ActionsData struct {
	Actions map[string]CachedAction `json:"actions"`
	Active  bool                    `json:"active"`
	Names   []string                `json:"names"`
}

// CachedAction is the last message received from one car.
type CachedAction struct {
	Action   Message `json:"action"`
	Name     string  `json:"name"`
	Team     int     `json:"team"`
	Time     float64 `json:"time"`
	Outdated bool    `json:"outdated"`
}

// Message is the action part of a match comms message. Time and Target are
// only sent for some action types.
type Message struct {
	Type      string    `json:"type"`
	Time      *float64  `json:"time,omitempty"`
	Target    *int      `json:"target,omitempty"`
	Direction []float64 `json:"direction,omitempty"`
}

// DecodeActions reads a data.json document.
func DecodeActions(r io.Reader) (*ActionsData, error) {
	var d ActionsData
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode actions: %w", err)
	}
	return &d, nil
}

// Board converts the tracker's data into the action feed the overlay formats.
func (d *ActionsData) Board() (overlay.ActionBoard, error) {
	board := overlay.ActionBoard{
		Active:  d.Active,
		Names:   d.Names,
		Actions: make([]overlay.BotAction, 0, len(d.Actions)),
	}
	for key, cached := range d.Actions {
		index, err := strconv.Atoi(key)
		if err != nil {
			return overlay.ActionBoard{}, fmt.Errorf("actions: car index %q is not a number", key)
		}
		board.Actions = append(board.Actions, overlay.BotAction{
			Index:    index,
			Name:     cached.Name,
			Team:     cached.Team,
			Action:   overlay.Action(cached.Action.Type),
			Time:     cached.Time,
			Target:   cached.Action.Target,
			Outdated: cached.Outdated,
		})
	}
	return board, nil
}
