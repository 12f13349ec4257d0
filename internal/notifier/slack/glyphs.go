package slack

import (
	"fmt"

	"github.com/mauv0809/league-overlay/internal/overlay"
)

// GlyphSet maps every overlay symbol to the text drawn for it in Slack.
type GlyphSet struct {
	tiers     map[overlay.Tier]string
	movements map[overlay.Movement]string
	results   map[overlay.ResultIcon]string
	actions   map[overlay.Action]string
}

// GlyphTables holds one table per symbol kind.
type GlyphTables struct {
	Tiers     map[overlay.Tier]string
	Movements map[overlay.Movement]string
	Results   map[overlay.ResultIcon]string
	Actions   map[overlay.Action]string
}

// NewGlyphSet builds a GlyphSet and fails if a symbol is missing or unknown,
// so an incomplete table is caught at startup rather than rendered blank.
func NewGlyphSet(t GlyphTables) (*GlyphSet, error) {
	if err := complete("tier", overlay.Tiers, t.Tiers); err != nil {
		return nil, err
	}
	if err := complete("movement", overlay.Movements, t.Movements); err != nil {
		return nil, err
	}
	if err := complete("result", overlay.ResultIcons, t.Results); err != nil {
		return nil, err
	}
	if err := complete("action", overlay.Actions, t.Actions); err != nil {
		return nil, err
	}
	return &GlyphSet{tiers: t.Tiers, movements: t.Movements, results: t.Results, actions: t.Actions}, nil
}

func complete[K comparable](kind string, want []K, got map[K]string) error {
	for _, k := range want {
		if g, ok := got[k]; !ok || g == "" {
			return fmt.Errorf("no %s glyph for %v", kind, k)
		}
	}
	if len(got) != len(want) {
		for k := range got {
			known := false
			for _, w := range want {
				if k == w {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown %s symbol %v", kind, k)
			}
		}
	}
	return nil
}

// DefaultGlyphs is the emoji table used unless another one is configured.
func DefaultGlyphs() *GlyphSet {
	g, err := NewGlyphSet(GlyphTables{
		Tiers: map[overlay.Tier]string{
			overlay.TierTransistor:  "⚪",
			overlay.TierCircuit:     "🟢",
			overlay.TierProcessor:   "🔵",
			overlay.TierOverclocked: "🟣",
			overlay.TierQuantum:     "🟡",
		},
		Movements: map[overlay.Movement]string{
			overlay.MovementNew:  "🆕",
			overlay.MovementDown: "🔻",
			overlay.MovementUp:   "🔺",
			overlay.MovementSame: "➖",
		},
		Results: map[overlay.ResultIcon]string{
			overlay.IconWin:  "✅",
			overlay.IconLoss: "❌",
		},
		Actions: map[overlay.Action]string{
			overlay.ActionBall:   "⚽",
			overlay.ActionBoost:  "⛽",
			overlay.ActionDemo:   "💣",
			overlay.ActionReady:  "✔️",
			overlay.ActionDefend: "🛡️",
		},
	})
	if err != nil {
		panic(err)
	}
	return g
}

// Tier returns the glyph for a tier.
func (g *GlyphSet) Tier(t overlay.Tier) string {
	return g.tiers[t]
}

// Movement returns the glyph for a movement indicator.
func (g *GlyphSet) Movement(m overlay.Movement) string {
	return g.movements[m]
}

// Result returns the glyph for a single game result.
func (g *GlyphSet) Result(r overlay.ResultIcon) string {
	return g.results[r]
}

// Action returns the glyph for a match comms action.
func (g *GlyphSet) Action(a overlay.Action) string {
	return g.actions[a]
}
