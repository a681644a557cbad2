package games

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/MJE43/gamehub-go/internal/hunts"
)

// HuntPhase is the lifecycle of a hunt run.
type HuntPhase string

const (
	HuntPlaying   HuntPhase = "playing"
	HuntAdvancing HuntPhase = "advancing"
	HuntFinished  HuntPhase = "finished"
)

const (
	huntLevelPoints   = 100
	huntHintPoints    = 50
	huntCompleteBonus = 500
	huntAdvanceDelay  = 1500 * time.Millisecond
	huntCompleteDelay = 2 * time.Second
)

var huntSpec = GameSpec{
	ID:          "hunt",
	Name:        "Treasure Hunt",
	Description: "Solve a saved hunt level by level",
}

// normalizeAnswer trims surrounding whitespace, composes to NFC and folds
// case, so "  PARIS " and "paris" compare equal.
func normalizeAnswer(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// MatchAnswer reports whether input matches the expected answer.
func MatchAnswer(input, expected string) bool {
	return normalizeAnswer(input) == normalizeAnswer(expected)
}

// HuntPlayer plays one saved hunt through its levels in order.
type HuntPlayer struct {
	session

	hunt      hunts.Hunt
	level     int
	phase     HuntPhase
	hintShown bool
	wrong     bool
	attempts  int
	completed []int
	score     int
}

// HuntLevelView is the current level without its answer.
type HuntLevelView struct {
	Title    string `json:"title"`
	Clue     string `json:"clue"`
	Hint     string `json:"hint,omitempty"`
	HasHint  bool   `json:"has_hint"`
	Location string `json:"location,omitempty"`
}

// HuntState is the display snapshot.
type HuntState struct {
	HuntID    uuid.UUID      `json:"hunt_id"`
	Title     string         `json:"title"`
	Phase     HuntPhase      `json:"phase"`
	Level     int            `json:"level"`
	Levels    int            `json:"levels"`
	Current   *HuntLevelView `json:"current,omitempty"`
	HintShown bool           `json:"hint_shown"`
	Wrong     bool           `json:"wrong"`
	Attempts  int            `json:"attempts"`
	Completed []int          `json:"completed"`
	Score     int            `json:"score"`
}

// NewHuntPlayer starts a run of h at its first level.
func NewHuntPlayer(deps Deps, h hunts.Hunt) *HuntPlayer {
	g := &HuntPlayer{hunt: h, phase: HuntPlaying}
	g.init(deps, huntSpec.ID)
	return g
}

func newHuntFromParams(deps Deps, params map[string]any) (Game, error) {
	raw := paramString(params, "hunt_id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: hunt_id %q: %v", ErrInvalidParams, raw, err)
	}
	if deps.Hunts == nil {
		return nil, fmt.Errorf("%w: no hunt catalogue", ErrInvalidParams)
	}
	h, err := deps.Hunts.Playable(id)
	if err != nil {
		return nil, err
	}
	return NewHuntPlayer(deps, h), nil
}

// Spec returns metadata about the hunt game.
func (g *HuntPlayer) Spec() GameSpec {
	return huntSpec
}

// Restart replays the hunt from its first level.
func (g *HuntPlayer) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sched.Reset()
	g.level = 0
	g.phase = HuntPlaying
	g.hintShown = false
	g.wrong = false
	g.attempts = 0
	g.completed = nil
	g.score = 0
}

// RevealHint shows the current level's hint, halving its points.
func (g *HuntPlayer) RevealHint() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == HuntPlaying && g.hunt.Levels[g.level].Hint != "" {
		g.hintShown = true
	}
}

// Submit checks an answer for the current level. Blank submissions and
// submissions while an advance is pending are ignored.
func (g *HuntPlayer) Submit(answer string) {
	if strings.TrimSpace(answer) == "" {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != HuntPlaying {
		return
	}
	g.attempts++
	if !MatchAnswer(answer, g.hunt.Levels[g.level].Answer) {
		g.wrong = true
		return
	}

	g.wrong = false
	points := huntLevelPoints
	if g.hintShown {
		points = huntHintPoints
	}
	g.score += points
	g.award(points)
	g.completed = append(g.completed, g.level)
	g.phase = HuntAdvancing

	if g.level == len(g.hunt.Levels)-1 {
		g.sched.After(huntCompleteDelay, func() {
			g.score += huntCompleteBonus
			g.award(huntCompleteBonus)
			g.phase = HuntFinished
		})
		return
	}
	g.sched.After(huntAdvanceDelay, func() {
		g.level++
		g.hintShown = false
		g.attempts = 0
		g.phase = HuntPlaying
	})
}

// Snapshot returns a copy of the current state
func (g *HuntPlayer) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *HuntPlayer) State() HuntState {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := HuntState{
		HuntID:    g.hunt.ID,
		Title:     g.hunt.Title,
		Phase:     g.phase,
		Level:     g.level,
		Levels:    len(g.hunt.Levels),
		HintShown: g.hintShown,
		Wrong:     g.wrong,
		Attempts:  g.attempts,
		Completed: append([]int(nil), g.completed...),
		Score:     g.score,
	}
	if g.phase != HuntFinished {
		l := g.hunt.Levels[g.level]
		st.Current = &HuntLevelView{
			Title:    l.Title,
			Clue:     l.Clue,
			HasHint:  l.Hint != "",
			Location: l.Location,
		}
		if g.hintShown {
			st.Current.Hint = l.Hint
		}
	}
	return st
}

// Apply dispatches "submit" {answer}, "hint" and "restart".
func (g *HuntPlayer) Apply(action string, params map[string]any) error {
	switch action {
	case "submit":
		g.Submit(paramString(params, "answer"))
	case "hint":
		g.RevealHint()
	case "restart":
		g.Restart()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return nil
}
