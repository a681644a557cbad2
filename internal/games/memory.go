package games

import (
	"fmt"
	"time"

	"github.com/MJE43/gamehub-go/internal/engine"
)

// Card is one memory card.
type Card struct {
	ID      int    `json:"id"`
	Symbol  string `json:"symbol"`
	Flipped bool   `json:"flipped"`
	Matched bool   `json:"matched"`
}

const (
	memoryPairs       = 8
	memoryMatchPoints = 100
	memoryMatchDelay  = time.Second
	memoryFlipBack    = 1500 * time.Millisecond
	memoryTimeBonus   = 1000
	memoryTimePenalty = 10
	memoryMoveBonus   = 500
	memoryMovePenalty = 25
)

var memorySpec = GameSpec{
	ID:          "memory",
	Name:        "Memory Master",
	Description: "Find all matching pairs",
}

// MemoryBonus is the win bonus for the elapsed seconds and moves taken.
func MemoryBonus(seconds, moves int) int {
	return max(0, memoryTimeBonus-memoryTimePenalty*seconds) + max(0, memoryMoveBonus-memoryMovePenalty*moves)
}

// Memory is the card-matching game.
type Memory struct {
	session

	cards     []Card
	flipped   []int
	moves     int
	score     int
	won       bool
	startedAt time.Time
	elapsed   time.Duration
}

// MemoryState is the display snapshot. Symbols of face-down cards are
// hidden.
type MemoryState struct {
	Cards   []Card `json:"cards"`
	Moves   int    `json:"moves"`
	Score   int    `json:"score"`
	Won     bool   `json:"won"`
	Seconds int    `json:"seconds"`
}

// NewMemory deals a fresh shuffled board.
func NewMemory(deps Deps) *Memory {
	g := &Memory{}
	g.init(deps, memorySpec.ID)
	g.dealLocked()
	return g
}

func newMemoryFromParams(deps Deps, _ map[string]any) (Game, error) {
	return NewMemory(deps), nil
}

// Spec returns metadata about the memory game.
func (g *Memory) Spec() GameSpec {
	return memorySpec
}

// Start deals a new board and restarts the timer.
func (g *Memory) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dealLocked()
}

func (g *Memory) dealLocked() {
	g.sched.Reset()
	symbols := make([]string, 0, memoryPairs*2)
	for _, s := range iconSymbols[:memoryPairs] {
		symbols = append(symbols, s, s)
	}
	engine.Shuffle(g.deps.Random, symbols)

	g.cards = make([]Card, len(symbols))
	for i, s := range symbols {
		g.cards[i] = Card{ID: i, Symbol: s}
	}
	g.flipped = nil
	g.moves = 0
	g.score = 0
	g.won = false
	g.elapsed = 0
	g.startedAt = g.sched.Now()
}

// Flip turns a card face up.
func (g *Memory) Flip(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id < 0 || id >= len(g.cards) {
		return fmt.Errorf("%w: card %d", ErrInvalidIndex, id)
	}
	c := &g.cards[id]
	if g.won || len(g.flipped) >= 2 || c.Flipped || c.Matched {
		return nil
	}
	c.Flipped = true
	g.flipped = append(g.flipped, id)
	if len(g.flipped) < 2 {
		return nil
	}

	g.moves++
	a, b := g.flipped[0], g.flipped[1]
	if g.cards[a].Symbol != g.cards[b].Symbol {
		g.sched.After(memoryFlipBack, func() {
			g.cards[a].Flipped = false
			g.cards[b].Flipped = false
			g.flipped = nil
		})
		return nil
	}

	g.sched.After(memoryMatchDelay, func() {
		g.cards[a].Matched = true
		g.cards[b].Matched = true
		g.flipped = nil
		g.score += memoryMatchPoints
		g.award(memoryMatchPoints)

		for _, c := range g.cards {
			if !c.Matched {
				return
			}
		}
		g.won = true
		g.elapsed = g.sched.Now().Sub(g.startedAt)
		bonus := MemoryBonus(int(g.elapsed/time.Second), g.moves)
		g.score += bonus
		g.award(bonus)
	})
	return nil
}

// Snapshot returns a copy of the current state
func (g *Memory) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *Memory) State() MemoryState {
	g.mu.Lock()
	defer g.mu.Unlock()

	cards := make([]Card, len(g.cards))
	for i, c := range g.cards {
		if !c.Flipped && !c.Matched {
			c.Symbol = ""
		}
		cards[i] = c
	}
	elapsed := g.elapsed
	if !g.won {
		elapsed = g.sched.Now().Sub(g.startedAt)
	}
	return MemoryState{
		Cards:   cards,
		Moves:   g.moves,
		Score:   g.score,
		Won:     g.won,
		Seconds: int(elapsed / time.Second),
	}
}

// Apply dispatches "start" and "flip" {index}.
func (g *Memory) Apply(action string, params map[string]any) error {
	switch action {
	case "start":
		g.Start()
		return nil
	case "flip":
		i, err := paramInt(params, "index")
		if err != nil {
			return err
		}
		return g.Flip(i)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
