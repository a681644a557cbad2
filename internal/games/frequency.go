package games

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FrequencyPhase is the lifecycle of a frequency-match game.
type FrequencyPhase string

const (
	FrequencyGuessing FrequencyPhase = "guessing"
	FrequencyFeedback FrequencyPhase = "feedback"
	FrequencyFinished FrequencyPhase = "finished"
)

const (
	frequencyRounds     = 5
	frequencyMinTarget  = 200
	frequencyMaxTarget  = 1000
	frequencyStartGuess = 440
	frequencyMinGuess   = 100
	frequencyMaxGuess   = 2000
	frequencyTargetTone = time.Second
	frequencyGuessTone  = 500 * time.Millisecond
	frequencyNextDelay  = 1500 * time.Millisecond
	frequencyBonus      = 200
	frequencyBonusAbove = 90
	frequencyPointsPer  = 10
	frequencyHzPerPoint = 10
)

var frequencySpec = GameSpec{
	ID:          "frequency",
	Name:        "Frequency Match",
	Description: "Tune your guess to the hidden tone",
}

// FrequencyAccuracy is max(0, 100 - |target-guess|/10): every 10Hz off
// costs one percent.
func FrequencyAccuracy(target, guess int) decimal.Decimal {
	diff := decimal.NewFromInt(int64(target - guess)).Abs()
	acc := hundred.Sub(diff.Div(decimal.NewFromInt(frequencyHzPerPoint)))
	if acc.IsNegative() {
		return decimal.Zero
	}
	return acc
}

// FrequencyPoints converts an accuracy into points.
func FrequencyPoints(accuracy decimal.Decimal) int {
	return int(accuracy.Mul(decimal.NewFromInt(frequencyPointsPer)).Floor().IntPart())
}

// Frequency asks the player to match a hidden tone over five rounds.
type Frequency struct {
	session

	phase        FrequencyPhase
	round        int
	target       int
	guess        int
	lastTarget   int
	lastAccuracy decimal.Decimal
	lastPoints   int
	score        int
}

// FrequencyState is the display snapshot. The target is only revealed
// once a guess has been submitted.
type FrequencyState struct {
	Phase        FrequencyPhase `json:"phase"`
	Round        int            `json:"round"`
	TotalRounds  int            `json:"total_rounds"`
	Guess        int            `json:"guess"`
	LastTarget   int            `json:"last_target,omitempty"`
	LastAccuracy float64        `json:"last_accuracy"`
	LastPoints   int            `json:"last_points"`
	Score        int            `json:"score"`
}

// NewFrequency creates a frequency game at round one.
func NewFrequency(deps Deps) *Frequency {
	g := &Frequency{}
	g.init(deps, frequencySpec.ID)
	g.resetLocked()
	return g
}

func newFrequencyFromParams(deps Deps, _ map[string]any) (Game, error) {
	return NewFrequency(deps), nil
}

// Spec returns metadata about the frequency game.
func (g *Frequency) Spec() GameSpec {
	return frequencySpec
}

// Start resets the game to round one with a new target.
func (g *Frequency) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

func (g *Frequency) resetLocked() {
	g.sched.Reset()
	g.round = 1
	g.score = 0
	g.lastTarget = 0
	g.lastPoints = 0
	g.lastAccuracy = decimal.Zero
	g.newTargetLocked()
}

func (g *Frequency) newTargetLocked() {
	g.phase = FrequencyGuessing
	g.target = g.deps.Random.IntRange(frequencyMinTarget, frequencyMaxTarget)
	g.guess = frequencyStartGuess
}

// SetGuess moves the guess, clamped to the adjustable range.
func (g *Frequency) SetGuess(hz int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.guess = max(frequencyMinGuess, min(hz, frequencyMaxGuess))
}

// PlayTarget plays the hidden tone.
func (g *Frequency) PlayTarget() {
	g.mu.Lock()
	target := g.target
	g.mu.Unlock()
	g.deps.Tones.Play(float64(target), frequencyTargetTone)
}

// PlayGuess plays the current guess.
func (g *Frequency) PlayGuess() {
	g.mu.Lock()
	guess := g.guess
	g.mu.Unlock()
	g.deps.Tones.Play(float64(guess), frequencyGuessTone)
}

// Submit scores the current guess against the target.
func (g *Frequency) Submit() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != FrequencyGuessing {
		return
	}
	g.lastTarget = g.target
	g.lastAccuracy = FrequencyAccuracy(g.target, g.guess)
	g.lastPoints = FrequencyPoints(g.lastAccuracy)
	g.score += g.lastPoints
	g.award(g.lastPoints)

	if g.round >= frequencyRounds {
		g.phase = FrequencyFinished
		if g.lastAccuracy.GreaterThan(decimal.NewFromInt(frequencyBonusAbove)) {
			g.score += frequencyBonus
			g.award(frequencyBonus)
		}
		return
	}
	g.phase = FrequencyFeedback
	g.sched.After(frequencyNextDelay, func() {
		g.round++
		g.newTargetLocked()
	})
}

// Snapshot returns a copy of the current state
func (g *Frequency) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *Frequency) State() FrequencyState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return FrequencyState{
		Phase:        g.phase,
		Round:        g.round,
		TotalRounds:  frequencyRounds,
		Guess:        g.guess,
		LastTarget:   g.lastTarget,
		LastAccuracy: g.lastAccuracy.Round(1).InexactFloat64(),
		LastPoints:   g.lastPoints,
		Score:        g.score,
	}
}

// Apply dispatches "start", "guess" {hz}, "play_target", "play_guess" and "submit".
func (g *Frequency) Apply(action string, params map[string]any) error {
	switch action {
	case "start":
		g.Start()
	case "guess":
		hz, err := paramInt(params, "hz")
		if err != nil {
			return err
		}
		g.SetGuess(hz)
	case "play_target":
		g.PlayTarget()
	case "play_guess":
		g.PlayGuess()
	case "submit":
		g.Submit()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return nil
}
