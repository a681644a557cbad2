package games

import (
	"fmt"
	"time"
)

// Simon is the sequence-recall game: repeat a growing sequence of tones.
type Simon struct {
	session

	sequence  []int
	entered   int
	level     int
	phase     SimonPhase
	highlight int
	score     int
}

// SimonPhase is where the game is in its round cycle.
type SimonPhase string

const (
	SimonIdle      SimonPhase = "idle"
	SimonReplaying SimonPhase = "replaying"
	SimonInput     SimonPhase = "input"
	SimonWon       SimonPhase = "won"
	SimonLost      SimonPhase = "lost"
)

const (
	simonButtons        = 4
	simonMaxLevel       = 10
	simonLevelPoints    = 50
	simonWinBonus       = 500
	simonToneDuration   = 500 * time.Millisecond
	simonToneGap        = 200 * time.Millisecond
	simonTapDuration    = 300 * time.Millisecond
	simonStartDelay     = 500 * time.Millisecond
	simonNextRoundDelay = time.Second
)

// C4, E4, G4, C5
var simonFrequencies = [simonButtons]float64{261.63, 329.63, 392.00, 523.25}

var simonSpec = GameSpec{
	ID:          "simon",
	Name:        "Audio Simon",
	Description: "Remember and repeat sound sequences",
}

// SimonState is the display snapshot. The sequence itself is not exposed;
// Highlight names the button sounding during replay, or -1.
type SimonState struct {
	Phase     SimonPhase `json:"phase"`
	Level     int        `json:"level"`
	Length    int        `json:"length"`
	Entered   int        `json:"entered"`
	Highlight int        `json:"highlight"`
	Score     int        `json:"score"`
	MaxLevel  int        `json:"max_level"`
}

// NewSimon creates an idle Simon game.
func NewSimon(deps Deps) *Simon {
	g := &Simon{phase: SimonIdle, highlight: -1}
	g.init(deps, simonSpec.ID)
	return g
}

func newSimonFromParams(deps Deps, _ map[string]any) (Game, error) {
	g := NewSimon(deps)
	g.Start()
	return g, nil
}

// Spec returns metadata about the Simon game.
func (g *Simon) Spec() GameSpec {
	return simonSpec
}

// Start resets the game and plays the first round after a short delay.
func (g *Simon) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sched.Reset()
	g.sequence = nil
	g.entered = 0
	g.level = 1
	g.score = 0
	g.highlight = -1
	g.phase = SimonReplaying
	g.sched.After(simonStartDelay, g.startRoundLocked)
}

// startRoundLocked appends one random step and replays the whole sequence.
func (g *Simon) startRoundLocked() {
	g.sequence = append(g.sequence, g.deps.Random.Intn(simonButtons))
	g.entered = 0
	g.phase = SimonReplaying

	step := simonToneDuration + simonToneGap
	for i, button := range g.sequence {
		button := button
		g.sched.After(time.Duration(i)*step, func() {
			g.highlight = button
			g.deps.Tones.Play(simonFrequencies[button], simonToneDuration)
		})
	}

	n := len(g.sequence)
	replay := time.Duration(n)*simonToneDuration + time.Duration(n-1)*simonToneGap
	g.sched.After(replay, func() {
		g.highlight = -1
		g.phase = SimonInput
	})
}

// Tap registers a button press. Presses outside the input phase are ignored.
func (g *Simon) Tap(button int) error {
	if button < 0 || button >= simonButtons {
		return fmt.Errorf("%w: button %d", ErrInvalidIndex, button)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != SimonInput {
		return nil
	}

	g.deps.Tones.Play(simonFrequencies[button], simonTapDuration)

	if g.sequence[g.entered] != button {
		g.phase = SimonLost
		return nil
	}

	g.entered++
	if g.entered < len(g.sequence) {
		return nil
	}

	points := g.level * simonLevelPoints
	g.score += points
	g.award(points)

	if g.level >= simonMaxLevel {
		g.phase = SimonWon
		g.score += simonWinBonus
		g.award(simonWinBonus)
		return nil
	}

	g.level++
	g.phase = SimonReplaying
	g.sched.After(simonNextRoundDelay, g.startRoundLocked)
	return nil
}

// Snapshot returns a copy of the current state
func (g *Simon) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *Simon) State() SimonState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return SimonState{
		Phase:     g.phase,
		Level:     g.level,
		Length:    len(g.sequence),
		Entered:   g.entered,
		Highlight: g.highlight,
		Score:     g.score,
		MaxLevel:  simonMaxLevel,
	}
}

// Apply dispatches "start" and "tap" {index}.
func (g *Simon) Apply(action string, params map[string]any) error {
	switch action {
	case "start":
		g.Start()
		return nil
	case "tap":
		i, err := paramInt(params, "index")
		if err != nil {
			return err
		}
		return g.Tap(i)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
