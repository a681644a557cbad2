package games

import (
	"fmt"
	"time"
)

// Reaction is the reaction-time test: wait for the signal, then click.
type Reaction struct {
	session

	phase      ReactionPhase
	round      int
	times      []int // valid reaction times only
	results    []ReactionResult
	current    *ReactionResult
	score      int
	reactStart time.Time
}

// ReactionPhase is the three-phase timer plus result bookkeeping.
type ReactionPhase string

const (
	ReactionReady    ReactionPhase = "ready"
	ReactionWaiting  ReactionPhase = "waiting"
	ReactionReact    ReactionPhase = "react"
	ReactionShowing  ReactionPhase = "result"
	ReactionFinished ReactionPhase = "finished"
)

// EarlyClick is the sentinel reaction time recorded for a click during
// the waiting window.
const EarlyClick = -1

// ReactionResult is the outcome of one round.
type ReactionResult struct {
	Round  int    `json:"round"`
	TimeMs int    `json:"time_ms"`
	Early  bool   `json:"early"`
	Points int    `json:"points"`
	Rating string `json:"rating"`
}

// ReactionState is the display snapshot.
type ReactionState struct {
	Phase       ReactionPhase    `json:"phase"`
	Round       int              `json:"round"`
	TotalRounds int              `json:"total_rounds"`
	Current     *ReactionResult  `json:"current,omitempty"`
	Results     []ReactionResult `json:"results"`
	Score       int              `json:"score"`
	AverageMs   int              `json:"average_ms"`
	BestMs      int              `json:"best_ms"`
	Rating      string           `json:"rating,omitempty"`
}

const (
	reactionRounds  = 5
	reactionMinWait = 2000 * time.Millisecond
	reactionMaxWait = 5000 * time.Millisecond
)

// reactionThresholds maps reaction times onto points and ratings; the
// first row whose limit exceeds the time wins.
var reactionThresholds = []struct {
	limitMs int
	points  int
	rating  string
}{
	{200, 100, "Lightning Fast!"},
	{300, 80, "Excellent!"},
	{400, 60, "Good!"},
	{500, 40, "Average"},
	{600, 20, "Slow"},
}

const (
	reactionFloorPoints = 10
	reactionSlowRating  = "Slow"
	reactionEarlyRating = "Too Early!"
)

var reactionSpec = GameSpec{
	ID:          "reaction",
	Name:        "Reaction Time",
	Description: "Test your reflexes",
}

// ReactionPoints maps a reaction time in ms onto points. Early clicks
// score zero.
func ReactionPoints(ms int) int {
	if ms < 0 {
		return 0
	}
	for _, th := range reactionThresholds {
		if ms < th.limitMs {
			return th.points
		}
	}
	return reactionFloorPoints
}

// ReactionRating names a reaction time using the same thresholds.
func ReactionRating(ms int) string {
	if ms < 0 {
		return reactionEarlyRating
	}
	for _, th := range reactionThresholds {
		if ms < th.limitMs {
			return th.rating
		}
	}
	return reactionSlowRating
}

// NewReaction creates a reaction test in the ready phase.
func NewReaction(deps Deps) *Reaction {
	g := &Reaction{phase: ReactionReady}
	g.init(deps, reactionSpec.ID)
	return g
}

func newReactionFromParams(deps Deps, _ map[string]any) (Game, error) {
	g := NewReaction(deps)
	g.Start()
	return g, nil
}

// Spec returns metadata about the reaction game.
func (g *Reaction) Spec() GameSpec {
	return reactionSpec
}

// Start resets all rounds and opens the first waiting window.
func (g *Reaction) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sched.Reset()
	g.round = 0
	g.times = nil
	g.results = nil
	g.current = nil
	g.score = 0
	g.startRoundLocked()
}

// startRoundLocked opens a waiting window of unpredictable length. The
// transition to react is cancelled by an early click or a reset.
func (g *Reaction) startRoundLocked() {
	g.phase = ReactionWaiting
	g.current = nil
	ms := g.deps.Random.IntRange(int(reactionMinWait/time.Millisecond), int(reactionMaxWait/time.Millisecond))
	g.sched.After(time.Duration(ms)*time.Millisecond, func() {
		g.reactStart = g.sched.Now()
		g.phase = ReactionReact
	})
}

// Click registers the player's reaction.
func (g *Reaction) Click() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case ReactionWaiting:
		g.sched.Reset()
		g.recordLocked(ReactionResult{
			Round:  g.round + 1,
			TimeMs: EarlyClick,
			Early:  true,
			Rating: reactionEarlyRating,
		})
	case ReactionReact:
		ms := int(g.sched.Now().Sub(g.reactStart) / time.Millisecond)
		points := ReactionPoints(ms)
		g.times = append(g.times, ms)
		g.score += points
		g.award(points)
		g.recordLocked(ReactionResult{
			Round:  g.round + 1,
			TimeMs: ms,
			Points: points,
			Rating: ReactionRating(ms),
		})
	}
}

func (g *Reaction) recordLocked(r ReactionResult) {
	g.results = append(g.results, r)
	g.current = &r
	g.phase = ReactionShowing
}

// Next advances past a result to the next round or finishes the test.
func (g *Reaction) Next() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != ReactionShowing {
		return
	}
	g.round++
	if g.round >= reactionRounds {
		g.phase = ReactionFinished
		g.current = nil
		return
	}
	g.startRoundLocked()
}

// averageLocked returns the rounded mean of valid reaction times, or 0.
func (g *Reaction) averageLocked() int {
	if len(g.times) == 0 {
		return 0
	}
	sum := 0
	for _, t := range g.times {
		sum += t
	}
	// round half up
	return (2*sum + len(g.times)) / (2 * len(g.times))
}

func (g *Reaction) bestLocked() int {
	best := 0
	for i, t := range g.times {
		if i == 0 || t < best {
			best = t
		}
	}
	return best
}

// Snapshot returns a copy of the current state
func (g *Reaction) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *Reaction) State() ReactionState {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := ReactionState{
		Phase:       g.phase,
		Round:       g.round,
		TotalRounds: reactionRounds,
		Results:     append([]ReactionResult(nil), g.results...),
		Score:       g.score,
		AverageMs:   g.averageLocked(),
		BestMs:      g.bestLocked(),
	}
	if g.current != nil {
		cur := *g.current
		st.Current = &cur
	}
	if g.phase == ReactionFinished && len(g.times) > 0 {
		st.Rating = ReactionRating(st.AverageMs)
	}
	return st
}

// Apply dispatches "start", "click" and "next".
func (g *Reaction) Apply(action string, _ map[string]any) error {
	switch action {
	case "start":
		g.Start()
	case "click":
		g.Click()
	case "next":
		g.Next()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return nil
}
