package games

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RhythmPhase is the lifecycle of a rhythm round.
type RhythmPhase string

const (
	RhythmIdle      RhythmPhase = "idle"
	RhythmPlaying   RhythmPhase = "playing"
	RhythmRecording RhythmPhase = "recording"
	RhythmScored    RhythmPhase = "scored"
	RhythmFinished  RhythmPhase = "finished"
)

const (
	rhythmMaxLevel     = 3
	rhythmStartDelay   = 500 * time.Millisecond
	rhythmNextDelay    = 2 * time.Second
	rhythmBeatFreq     = 440.0
	rhythmBeatDuration = 200 * time.Millisecond
	rhythmPointsPer    = 5
	rhythmBonus        = 300
	rhythmBonusAbove   = 80
)

var rhythmSpec = GameSpec{
	ID:          "rhythm",
	Name:        "Rhythm Master",
	Description: "Tap the beat back in time",
}

var hundred = decimal.NewFromInt(100)

// RhythmAccuracy compares observed gaps to expected intervals position by
// position. Each gap scores max(0, 100 - |e-a|/e*100); the result is the
// mean over all expected intervals, so a missing gap counts as zero.
func RhythmAccuracy(expected, actual []int) decimal.Decimal {
	if len(expected) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for i, e := range expected {
		if i >= len(actual) || e <= 0 {
			continue
		}
		exp := decimal.NewFromInt(int64(e))
		diff := decimal.NewFromInt(int64(actual[i] - e)).Abs()
		acc := hundred.Sub(diff.Div(exp).Mul(hundred))
		if acc.IsPositive() {
			sum = sum.Add(acc)
		}
	}
	return sum.Div(decimal.NewFromInt(int64(len(expected))))
}

// RhythmPoints converts an average accuracy into points.
func RhythmPoints(accuracy decimal.Decimal) int {
	return int(accuracy.Mul(decimal.NewFromInt(rhythmPointsPer)).Floor().IntPart())
}

// rhythmPattern draws the intervals for a level: three slow ones at level
// one, then level+2 faster ones.
func rhythmPattern(g *Rhythm, level int) []int {
	n, lo, hi := 3, 500, 2500
	if level > 1 {
		n, lo, hi = level+2, 300, 1800
	}
	out := make([]int, n)
	for i := range out {
		out[i] = g.deps.Random.IntRange(lo, hi)
	}
	return out
}

// Rhythm plays a pattern of beats and scores the player's reproduction.
type Rhythm struct {
	session

	phase        RhythmPhase
	level        int
	pattern      []int
	beat         int
	started      bool
	startAt      time.Time
	gaps         []int
	lastAccuracy decimal.Decimal
	lastPoints   int
	score        int
}

// RhythmState is the display snapshot.
type RhythmState struct {
	Phase        RhythmPhase `json:"phase"`
	Level        int         `json:"level"`
	MaxLevel     int         `json:"max_level"`
	Pattern      []int       `json:"pattern"`
	Beat         int         `json:"beat"`
	Taps         int         `json:"taps"`
	Gaps         []int       `json:"gaps"`
	LastAccuracy float64     `json:"last_accuracy"`
	LastPoints   int         `json:"last_points"`
	Score        int         `json:"score"`
}

// NewRhythm creates a rhythm game waiting to start.
func NewRhythm(deps Deps) *Rhythm {
	g := &Rhythm{phase: RhythmIdle, beat: -1}
	g.init(deps, rhythmSpec.ID)
	return g
}

func newRhythmFromParams(deps Deps, _ map[string]any) (Game, error) {
	g := NewRhythm(deps)
	g.Start()
	return g, nil
}

// Spec returns metadata about the rhythm game.
func (g *Rhythm) Spec() GameSpec {
	return rhythmSpec
}

// Start begins level one; the pattern plays after a short lead-in.
func (g *Rhythm) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sched.Reset()
	g.level = 1
	g.score = 0
	g.lastPoints = 0
	g.lastAccuracy = decimal.Zero
	g.pattern = rhythmPattern(g, g.level)
	g.phase = RhythmPlaying
	g.beat = -1
	g.gaps = nil
	g.started = false
	g.sched.After(rhythmStartDelay, g.playLocked)
}

// playLocked schedules one tone per beat, separated by the pattern's
// intervals, then opens recording once the last tone has finished.
func (g *Rhythm) playLocked() {
	g.phase = RhythmPlaying
	g.gaps = nil
	g.started = false

	var offset time.Duration
	for i := 0; i <= len(g.pattern); i++ {
		beat := i
		g.sched.After(offset, func() {
			g.beat = beat
			g.deps.Tones.Play(rhythmBeatFreq, rhythmBeatDuration)
		})
		if i < len(g.pattern) {
			offset += time.Duration(g.pattern[i]) * time.Millisecond
		}
	}
	g.sched.After(offset+rhythmBeatDuration, func() {
		g.beat = -1
		g.phase = RhythmRecording
	})
}

// Tap records one beat from the player.
func (g *Rhythm) Tap() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != RhythmRecording {
		return
	}
	g.deps.Tones.Play(rhythmBeatFreq, rhythmBeatDuration)

	now := g.sched.Now()
	if !g.started {
		g.started = true
		g.startAt = now
		return
	}
	last := g.startAt
	for _, gap := range g.gaps {
		last = last.Add(time.Duration(gap) * time.Millisecond)
	}
	g.gaps = append(g.gaps, int(now.Sub(last)/time.Millisecond))

	if len(g.gaps) >= len(g.pattern) {
		g.scoreLocked()
	}
}

func (g *Rhythm) scoreLocked() {
	g.lastAccuracy = RhythmAccuracy(g.pattern, g.gaps)
	g.lastPoints = RhythmPoints(g.lastAccuracy)
	g.score += g.lastPoints
	g.award(g.lastPoints)

	if g.level >= rhythmMaxLevel {
		g.phase = RhythmFinished
		if g.lastAccuracy.GreaterThan(decimal.NewFromInt(rhythmBonusAbove)) {
			g.score += rhythmBonus
			g.award(rhythmBonus)
		}
		return
	}

	g.phase = RhythmScored
	g.sched.After(rhythmNextDelay, func() {
		g.level++
		g.pattern = rhythmPattern(g, g.level)
		g.playLocked()
	})
}

// Snapshot returns a copy of the current state
func (g *Rhythm) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *Rhythm) State() RhythmState {
	g.mu.Lock()
	defer g.mu.Unlock()

	taps := len(g.gaps)
	if g.started {
		taps++
	}
	return RhythmState{
		Phase:        g.phase,
		Level:        g.level,
		MaxLevel:     rhythmMaxLevel,
		Pattern:      append([]int(nil), g.pattern...),
		Beat:         g.beat,
		Taps:         taps,
		Gaps:         append([]int(nil), g.gaps...),
		LastAccuracy: g.lastAccuracy.Round(2).InexactFloat64(),
		LastPoints:   g.lastPoints,
		Score:        g.score,
	}
}

// Apply dispatches "start" and "tap".
func (g *Rhythm) Apply(action string, _ map[string]any) error {
	switch action {
	case "start":
		g.Start()
	case "tap":
		g.Tap()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return nil
}
