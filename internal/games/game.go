package games

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/MJE43/gamehub-go/internal/audio"
	"github.com/MJE43/gamehub-go/internal/clock"
	"github.com/MJE43/gamehub-go/internal/engine"
	"github.com/MJE43/gamehub-go/internal/hunts"
)

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidIndex    = errors.New("index out of range")
	ErrInvalidParams   = errors.New("invalid params")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownGame     = errors.New("unknown game")
	ErrNotStarted      = errors.New("game not started")
)

// ScoreFunc receives every score delta a game awards.
type ScoreFunc func(delta int)

// HuntSource resolves a saved hunt for the hunt player.
type HuntSource interface {
	Playable(id uuid.UUID) (hunts.Hunt, error)
}

// Deps are the collaborators a game session consumes. Nothing in Deps is
// shared between two sessions except the clock, the tone service and the
// hunt catalogue.
type Deps struct {
	Clock  clock.Clock
	Tones  audio.ToneService
	Random *engine.Source
	Score  ScoreFunc
	Hunts  HuntSource
}

func (d Deps) withDefaults(stream string) Deps {
	if d.Clock == nil {
		d.Clock = clock.NewReal()
	}
	if d.Tones == nil {
		d.Tones = audio.Silent{}
	}
	if d.Random == nil {
		d.Random = engine.NewRandomSource(stream)
	}
	if d.Score == nil {
		d.Score = func(int) {}
	}
	return d
}

// GameSpec describes a game in the hub menu.
type GameSpec struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Game is a running game session as the hub sees it.
type Game interface {
	// Spec returns metadata about the game
	Spec() GameSpec

	// Apply dispatches a player action by name
	Apply(action string, params map[string]any) error

	// Snapshot returns a copy of the current state for the display surface
	Snapshot() any

	// Close cancels every pending delayed transition
	Close()
}

// Factory creates and starts a game session.
type Factory func(deps Deps, params map[string]any) (Game, error)

type registration struct {
	spec    GameSpec
	factory Factory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]registration)
)

// Register adds a game to the registry
func Register(spec GameSpec, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[spec.ID] = registration{spec: spec, factory: factory}
}

// New creates a session of the game with the given id.
func New(id string, deps Deps, params map[string]any) (Game, error) {
	registryMu.RLock()
	reg, ok := registry[id]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return reg.factory(deps, params)
}

// GetGame returns the spec of a registered game
func GetGame(id string) (GameSpec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	reg, ok := registry[id]
	return reg.spec, ok
}

// ListGames returns all registered games ordered by id
func ListGames() []GameSpec {
	registryMu.RLock()
	defer registryMu.RUnlock()

	specs := make([]GameSpec, 0, len(registry))
	for _, reg := range registry {
		specs = append(specs, reg.spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID < specs[j].ID })
	return specs
}

func init() {
	Register(simonSpec, newSimonFromParams)
	Register(iconMatchSpec, newIconMatchFromParams)
	Register(reactionSpec, newReactionFromParams)
	Register(triviaSpec, newTriviaFromParams)
	Register(ticTacToeSpec, newTicTacToeFromParams)
	Register(huntSpec, newHuntFromParams)
	Register(rhythmSpec, newRhythmFromParams)
	Register(frequencySpec, newFrequencyFromParams)
	Register(memorySpec, newMemoryFromParams)
}
