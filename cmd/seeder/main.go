package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/league-overlay/internal/summary"
	"github.com/spf13/cobra"
)

var (
	dir        string
	bots       int
	teamSize   int
	rounds     int
	keepRounds int
	interval   time.Duration
	seed       int64
)

var demoNames = []string{
	"Nexto", "Kamael", "Necto", "Element", "Botimus Prime", "Atba", "Beast from the East",
	"Diablo", "Self-driving car", "Air Bud", "Rocketnoodles", "Leaf", "Wildfire", "Snek",
	"Seer", "Phoenix", "Stick", "Bumblebee", "Monkey Moves", "Lanfear",
}

var demoLanguages = []string{"Python", "Rust", "C++", "Java", "C#", "N/A"}

var demoActions = []string{"BALL", "BOOST", "DEMO", "READY", "DEFEND"}

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Write a simulated league's summary files",
	Long: `Simulates a league and writes summary.json, current_match.json and the
match comms data.json the way the league runner and tracker do, so the overlay
can be exercised without a running league.
With --interval the seeder keeps playing a round per tick.`,
	RunE: run,
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	rootCmd.Flags().StringVar(&dir, "dir", os.Getenv("OVERLAY_DIR"), "Directory to write the summary files to (defaults to OVERLAY_DIR)")
	rootCmd.Flags().IntVar(&bots, "bots", 12, "Number of bots in the league")
	rootCmd.Flags().IntVar(&teamSize, "team-size", 3, "Bots per team")
	rootCmd.Flags().IntVar(&rounds, "rounds", 20, "Rounds to play before the first write")
	rootCmd.Flags().IntVar(&keepRounds, "matches", 6, "Number of latest matches included in the summary")
	rootCmd.Flags().DurationVar(&interval, "interval", 0, "Play and write one more round per interval; 0 writes once and exits")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed; 0 uses the current time")
}

type league struct {
	rng     *rand.Rand
	ratings map[string]float64
	tickets map[string]float64
	history []summary.PlayedMatch
	// before[i] is the ranking before history[i] was played.
	before [][]summary.Rating
}

func newLeague(rng *rand.Rand, n int) *league {
	l := &league{
		rng:     rng,
		ratings: make(map[string]float64, n),
		tickets: make(map[string]float64, n),
	}
	for i := 0; i < n; i++ {
		name := demoNames[i%len(demoNames)]
		if i >= len(demoNames) {
			name = fmt.Sprintf("%s %d", name, i/len(demoNames)+1)
		}
		l.ratings[name] = 20 + rng.Float64()*40
		l.tickets[name] = 4
	}
	return l
}

// ranking returns the bots sorted best first.
func (l *league) ranking() []summary.Rating {
	out := make([]summary.Rating, 0, len(l.ratings))
	for id, mmr := range l.ratings {
		out = append(out, summary.Rating{BotID: id, MMR: mmr, Sigma: 2})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MMR != out[j].MMR {
			return out[i].MMR > out[j].MMR
		}
		return out[i].BotID < out[j].BotID
	})
	return out
}

// draw picks the two teams of the next match.
func (l *league) draw() (blue, orange []string) {
	ids := make([]string, 0, len(l.ratings))
	for id := range l.ratings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	l.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return ids[:teamSize], ids[teamSize : 2*teamSize]
}

func (l *league) play(blue, orange []string) summary.PlayedMatch {
	m := summary.PlayedMatch{
		Blue:        blue,
		Orange:      orange,
		BlueGoals:   l.rng.Intn(6),
		OrangeGoals: l.rng.Intn(6),
	}
	delta := 1 + l.rng.Float64()*4
	switch {
	case m.BlueGoals > m.OrangeGoals:
		l.settle(blue, orange, delta)
	case m.OrangeGoals > m.BlueGoals:
		l.settle(orange, blue, delta)
	}
	l.history = append(l.history, m)
	return m
}

func (l *league) settle(winners, losers []string, delta float64) {
	for _, id := range winners {
		l.ratings[id] += delta
		l.tickets[id] *= 2
	}
	for _, id := range losers {
		l.ratings[id] -= delta
		l.tickets[id] = max(1, l.tickets[id]/2)
	}
}

// round plays one match and returns the summary as the league runner would
// write it afterwards, along with the teams drawn for the next match and their
// comms feed.
func (l *league) round() (*summary.Summary, *summary.CurrentMatch, *summary.ActionsData) {
	l.before = append(l.before, l.ranking())
	l.play(l.draw())

	first := max(0, len(l.history)-keepRounds)
	latest := l.history[first:]
	previous := l.before[first]

	s := summary.Build(summary.BuildInput{
		Current:       l.ranking(),
		Previous:      previous,
		Matches:       latest,
		Tickets:       l.tickets,
		NewBotTickets: 4,
	})

	blue, orange := l.draw()
	current := &summary.CurrentMatch{Map: "DFH Stadium"}
	for _, id := range blue {
		current.Blue = append(current.Blue, l.participant(s, id))
	}
	for _, id := range orange {
		current.Orange = append(current.Orange, l.participant(s, id))
	}
	return s, current, l.comms(blue, orange)
}

// participant fills the intro card details the league runner knows about a bot.
func (l *league) participant(s *summary.Summary, id string) summary.Participant {
	p := summary.Participant{
		Name:        id,
		Developer:   id + " Team",
		Description: "N/A",
		Language:    demoLanguages[len(id)%len(demoLanguages)],
		MMR:         l.ratings[id],
	}
	for _, b := range s.BotsByRank {
		if b.BotID == id {
			p.Rank = b.CurRank
			break
		}
	}
	return p
}

// comms simulates the tracker's data.json for the match about to be played.
// Cars are indexed blue first.
func (l *league) comms(blue, orange []string) *summary.ActionsData {
	names := append(append([]string(nil), blue...), orange...)
	d := &summary.ActionsData{
		Active:  true,
		Names:   names,
		Actions: make(map[string]summary.CachedAction, len(names)),
	}
	for i, name := range names {
		team, opponents := 0, len(blue)
		if i >= len(blue) {
			team, opponents = 1, 0
		}
		msg := summary.Message{Type: demoActions[l.rng.Intn(len(demoActions))]}
		if msg.Type == "DEMO" {
			target := opponents + l.rng.Intn(teamSize)
			msg.Target = &target
		}
		d.Actions[strconv.Itoa(i)] = summary.CachedAction{
			Action: msg,
			Name:   name,
			Team:   team,
			Time:   l.rng.Float64() * 300,
		}
	}
	return d
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".seeder-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// Rename so the poller never reads a half-written file.
	return os.Rename(tmp.Name(), path)
}

func write(s *summary.Summary, current *summary.CurrentMatch, actions *summary.ActionsData) error {
	if err := writeJSON(filepath.Join(dir, summary.SummaryFile), s); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, summary.CurrentMatchFile), current); err != nil {
		return fmt.Errorf("failed to write current match: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, summary.ActionsFile), actions); err != nil {
		return fmt.Errorf("failed to write actions: %w", err)
	}
	log.Info("Wrote league summary", "dir", dir, "bots", len(s.BotsByRank), "matches", len(s.Matches))
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if dir == "" {
		return fmt.Errorf("--dir or OVERLAY_DIR is required")
	}
	if bots < 2*teamSize || teamSize < 1 {
		return fmt.Errorf("need at least %d bots for teams of %d", 2*teamSize, teamSize)
	}
	if keepRounds < 1 {
		return fmt.Errorf("--matches must be at least 1")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("Starting seeder", "seed", seed, "bots", bots, "team_size", teamSize)

	l := newLeague(rand.New(rand.NewSource(seed)), bots)
	var (
		s       *summary.Summary
		current *summary.CurrentMatch
		actions *summary.ActionsData
	)
	for i := 0; i < max(rounds, 1); i++ {
		s, current, actions = l.round()
	}
	if err := write(s, current, actions); err != nil {
		return err
	}
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-ticker.C:
			if err := write(l.round()); err != nil {
				return err
			}
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal("Seeder failed", "error", err)
	}
}
