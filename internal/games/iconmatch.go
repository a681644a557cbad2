package games

import (
	"fmt"
	"time"

	"github.com/MJE43/gamehub-go/internal/engine"
)

// IconMatch is the target-matching timer: click every copy of the target
// icon before the countdown runs out.
type IconMatch struct {
	session

	phase      IconMatchPhase
	target     string
	items      []IconItem
	timeLeft   int
	score      int
	streak     int
	bestStreak int
	round      int
}

// IconMatchPhase is the lifecycle of an icon match game.
type IconMatchPhase string

const (
	IconMatchReady   IconMatchPhase = "ready"
	IconMatchPlaying IconMatchPhase = "playing"
	IconMatchOver    IconMatchPhase = "over"
)

// IconItem is one cell of the grid.
type IconItem struct {
	ID       int    `json:"id"`
	Symbol   string `json:"symbol"`
	Consumed bool   `json:"consumed"`
}

// IconMatchState is the display snapshot.
type IconMatchState struct {
	Phase      IconMatchPhase `json:"phase"`
	Target     string         `json:"target"`
	Items      []IconItem     `json:"items"`
	TimeLeft   int            `json:"time_left"`
	Score      int            `json:"score"`
	Streak     int            `json:"streak"`
	BestStreak int            `json:"best_streak"`
	Round      int            `json:"round"`
}

const (
	iconGridSize       = 12
	iconMinTargets     = 2
	iconMaxTargets     = 4
	iconStartSeconds   = 30
	iconMaxSeconds     = 60
	iconRoundBonus     = 5
	iconMissPenalty    = 3
	iconBasePoints     = 10
	iconStreakPoints   = 2
	iconNextRoundDelay = 500 * time.Millisecond
	iconTick           = time.Second
)

var iconSymbols = []string{
	"heart", "star", "zap", "target", "trophy", "diamond", "crown",
	"sparkles", "flame", "shield", "sword", "gem", "bolt", "sun",
}

var iconMatchSpec = GameSpec{
	ID:          "iconmatch",
	Name:        "Icon Matcher",
	Description: "Match icons as fast as you can",
}

// NewIconMatch creates an icon match game in the ready phase.
func NewIconMatch(deps Deps) *IconMatch {
	g := &IconMatch{phase: IconMatchReady, timeLeft: iconStartSeconds}
	g.init(deps, iconMatchSpec.ID)
	return g
}

func newIconMatchFromParams(deps Deps, _ map[string]any) (Game, error) {
	g := NewIconMatch(deps)
	g.Start()
	return g, nil
}

// Spec returns metadata about the icon match game.
func (g *IconMatch) Spec() GameSpec {
	return iconMatchSpec
}

// Start resets the score, the streak and the countdown and deals a round.
func (g *IconMatch) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sched.Reset()
	g.phase = IconMatchPlaying
	g.score = 0
	g.streak = 0
	g.bestStreak = 0
	g.round = 0
	g.timeLeft = iconStartSeconds
	g.dealLocked()

	g.sched.Every(iconTick, func() bool {
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.endLocked()
			return false
		}
		return true
	})
}

// dealLocked picks a new target and a reshuffled grid with 2-4 copies of it.
func (g *IconMatch) dealLocked() {
	rnd := g.deps.Random
	g.round++
	g.target = engine.Pick(rnd, iconSymbols)

	others := make([]string, 0, len(iconSymbols)-1)
	for _, s := range iconSymbols {
		if s != g.target {
			others = append(others, s)
		}
	}

	targets := rnd.IntRange(iconMinTargets, iconMaxTargets+1)
	symbols := make([]string, 0, iconGridSize)
	for i := 0; i < targets; i++ {
		symbols = append(symbols, g.target)
	}
	for len(symbols) < iconGridSize {
		symbols = append(symbols, engine.Pick(rnd, others))
	}
	engine.Shuffle(rnd, symbols)

	g.items = make([]IconItem, len(symbols))
	for i, s := range symbols {
		g.items[i] = IconItem{ID: i, Symbol: s}
	}
}

func (g *IconMatch) endLocked() {
	g.timeLeft = 0
	g.phase = IconMatchOver
	if g.streak > g.bestStreak {
		g.bestStreak = g.streak
	}
	g.sched.Reset()
}

// Click selects the grid item with the given id.
func (g *IconMatch) Click(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id < 0 || id >= len(g.items) {
		return fmt.Errorf("%w: item %d", ErrInvalidIndex, id)
	}
	if g.phase != IconMatchPlaying || g.items[id].Consumed {
		return nil
	}

	if g.items[id].Symbol != g.target {
		g.streak = 0
		g.timeLeft -= iconMissPenalty
		if g.timeLeft <= 0 {
			g.endLocked()
		}
		return nil
	}

	g.items[id].Consumed = true
	points := iconBasePoints + g.streak*iconStreakPoints
	g.score += points
	g.award(points)
	g.streak++
	if g.streak > g.bestStreak {
		g.bestStreak = g.streak
	}

	if g.remainingTargetsLocked() == 0 {
		g.sched.After(iconNextRoundDelay, func() {
			g.dealLocked()
			g.timeLeft = min(g.timeLeft+iconRoundBonus, iconMaxSeconds)
		})
	}
	return nil
}

func (g *IconMatch) remainingTargetsLocked() int {
	n := 0
	for _, it := range g.items {
		if it.Symbol == g.target && !it.Consumed {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the current state
func (g *IconMatch) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *IconMatch) State() IconMatchState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return IconMatchState{
		Phase:      g.phase,
		Target:     g.target,
		Items:      append([]IconItem(nil), g.items...),
		TimeLeft:   g.timeLeft,
		Score:      g.score,
		Streak:     g.streak,
		BestStreak: g.bestStreak,
		Round:      g.round,
	}
}

// Apply dispatches "start" and "click" {index}.
func (g *IconMatch) Apply(action string, params map[string]any) error {
	switch action {
	case "start":
		g.Start()
		return nil
	case "click":
		i, err := paramInt(params, "index")
		if err != nil {
			return err
		}
		return g.Click(i)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
