package games

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Difficulty tags a question and sets its base points.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyAll disables the difficulty filter.
const DifficultyAll = "all"

// Points returns the base points for a correct answer.
func (d Difficulty) Points() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 20
	case DifficultyHard:
		return 30
	}
	return 0
}

// Question is an immutable bank entry.
type Question struct {
	ID         int        `json:"id"`
	Prompt     string     `json:"prompt"`
	Options    [4]string  `json:"options"`
	Correct    int        `json:"correct"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// TriviaCategory summarizes the bank for one category.
type TriviaCategory struct {
	Name   string `json:"name"`
	Total  int    `json:"total"`
	Easy   int    `json:"easy"`
	Medium int    `json:"medium"`
	Hard   int    `json:"hard"`
}

// TriviaPhase is the lifecycle of a quiz.
type TriviaPhase string

const (
	TriviaSelect   TriviaPhase = "select"
	TriviaQuestion TriviaPhase = "question"
	TriviaFeedback TriviaPhase = "feedback"
	TriviaFinished TriviaPhase = "finished"
)

// NoAnswer is recorded when the countdown expires.
const NoAnswer = -1

const (
	triviaQuestionCount = 10
	triviaSeconds       = 30
	triviaFeedbackDelay = 2 * time.Second
	triviaTick          = time.Second
	triviaBonusDivisor  = 3
)

var triviaCategories = []string{"Science", "Geography", "Technology", "Entertainment", "History", "Sports"}

var triviaSpec = GameSpec{
	ID:          "trivia",
	Name:        "Ultimate Quiz",
	Description: "Ten questions, thirty seconds each",
}

func init() {
	if err := validateBank(triviaBank); err != nil {
		panic(fmt.Sprintf("games: trivia bank: %v", err))
	}
}

// validateBank checks every question for a known category and difficulty,
// four non-empty options, an in-range correct index and a unique ID.
func validateBank(bank []Question) error {
	seen := make(map[int]bool, len(bank))
	for _, q := range bank {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if !knownCategory(q.Category) {
			return fmt.Errorf("question %d: unknown category %q", q.ID, q.Category)
		}
		if q.Difficulty.Points() == 0 {
			return fmt.Errorf("question %d: unknown difficulty %q", q.ID, q.Difficulty)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question %d: correct index %d out of range", q.ID, q.Correct)
		}
		for i, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("question %d: option %d is empty", q.ID, i)
			}
		}
	}
	return nil
}

// Categories lists the bank's categories with per-difficulty counts.
func Categories() []TriviaCategory {
	out := make([]TriviaCategory, 0, len(triviaCategories))
	for _, name := range triviaCategories {
		c := TriviaCategory{Name: name}
		for _, q := range triviaBank {
			if q.Category != name {
				continue
			}
			c.Total++
			switch q.Difficulty {
			case DifficultyEasy:
				c.Easy++
			case DifficultyMedium:
				c.Medium++
			case DifficultyHard:
				c.Hard++
			}
		}
		out = append(out, c)
	}
	return out
}

// TriviaPoints is the award for a correct answer with the given seconds left.
func TriviaPoints(d Difficulty, remaining int) int {
	return d.Points() + remaining/triviaBonusDivisor
}

// Trivia runs one quiz of up to ten questions.
type Trivia struct {
	session

	phase      TriviaPhase
	category   string
	difficulty string
	questions  []Question
	index      int
	timeLeft   int
	selected   int
	lastPoints int
	score      int
	correct    int
}

// TriviaQuestionView is the current question as shown to the player. The
// correct index is only revealed during feedback.
type TriviaQuestionView struct {
	ID         int        `json:"id"`
	Prompt     string     `json:"prompt"`
	Options    [4]string  `json:"options"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Correct    *int       `json:"correct,omitempty"`
}

// TriviaState is the display snapshot.
type TriviaState struct {
	Phase      TriviaPhase         `json:"phase"`
	Category   string              `json:"category,omitempty"`
	Difficulty string              `json:"difficulty,omitempty"`
	Index      int                 `json:"index"`
	Total      int                 `json:"total"`
	Question   *TriviaQuestionView `json:"question,omitempty"`
	TimeLeft   int                 `json:"time_left"`
	Selected   *int                `json:"selected,omitempty"`
	LastPoints int                 `json:"last_points"`
	Score      int                 `json:"score"`
	Correct    int                 `json:"correct"`
	Percentage int                 `json:"percentage"`
}

// NewTrivia creates a quiz waiting for a category.
func NewTrivia(deps Deps) *Trivia {
	g := &Trivia{phase: TriviaSelect}
	g.init(deps, triviaSpec.ID)
	return g
}

func newTriviaFromParams(deps Deps, params map[string]any) (Game, error) {
	g := NewTrivia(deps)
	if cat := paramString(params, "category"); cat != "" {
		if err := g.Start(cat, paramString(params, "difficulty")); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Spec returns metadata about the trivia game.
func (g *Trivia) Spec() GameSpec {
	return triviaSpec
}

func knownCategory(name string) bool {
	for _, c := range triviaCategories {
		if c == name {
			return true
		}
	}
	return false
}

// Start samples up to ten questions from the category, optionally
// filtered by difficulty ("" or "all" keeps every difficulty).
func (g *Trivia) Start(category, difficulty string) error {
	if !knownCategory(category) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	switch difficulty {
	case "", DifficultyAll, string(DifficultyEasy), string(DifficultyMedium), string(DifficultyHard):
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidParams, difficulty)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var pool []Question
	for _, q := range triviaBank {
		if q.Category != category {
			continue
		}
		if difficulty != "" && difficulty != DifficultyAll && string(q.Difficulty) != difficulty {
			continue
		}
		pool = append(pool, q)
	}
	picks := g.deps.Random.Perm(len(pool))
	if len(picks) > triviaQuestionCount {
		picks = picks[:triviaQuestionCount]
	}
	questions := make([]Question, len(picks))
	for i, p := range picks {
		questions[i] = pool[p]
	}

	g.sched.Reset()
	g.category = category
	g.difficulty = difficulty
	g.questions = questions
	g.index = 0
	g.score = 0
	g.correct = 0
	g.lastPoints = 0
	if len(questions) == 0 {
		g.phase = TriviaFinished
		return nil
	}
	g.askLocked()
	return nil
}

// askLocked opens the current question with a fresh countdown.
func (g *Trivia) askLocked() {
	g.phase = TriviaQuestion
	g.timeLeft = triviaSeconds
	g.selected = NoAnswer
	g.sched.Every(triviaTick, func() bool {
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.answerLocked(NoAnswer)
			return false
		}
		return true
	})
}

// Answer submits an option index for the current question.
func (g *Trivia) Answer(choice int) error {
	if choice < 0 || choice >= 4 {
		return fmt.Errorf("%w: option %d", ErrInvalidIndex, choice)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == TriviaSelect {
		return ErrNotStarted
	}
	if g.phase != TriviaQuestion {
		return nil
	}
	g.answerLocked(choice)
	return nil
}

func (g *Trivia) answerLocked(choice int) {
	// stops the countdown
	g.sched.Reset()

	q := g.questions[g.index]
	g.selected = choice
	g.phase = TriviaFeedback
	g.lastPoints = 0
	if choice == q.Correct {
		g.lastPoints = TriviaPoints(q.Difficulty, g.timeLeft)
		g.score += g.lastPoints
		g.correct++
		g.award(g.lastPoints)
	}

	g.sched.After(triviaFeedbackDelay, func() {
		g.index++
		if g.index >= len(g.questions) {
			g.phase = TriviaFinished
			return
		}
		g.askLocked()
	})
}

// percentageLocked is correct/total as a whole percentage, half rounded up.
func (g *Trivia) percentageLocked() int {
	if len(g.questions) == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(g.correct * 100)).
		Div(decimal.NewFromInt(int64(len(g.questions)))).
		Round(0).
		IntPart())
}

// Snapshot returns a copy of the current state
func (g *Trivia) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *Trivia) State() TriviaState {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := TriviaState{
		Phase:      g.phase,
		Category:   g.category,
		Difficulty: g.difficulty,
		Index:      g.index,
		Total:      len(g.questions),
		TimeLeft:   g.timeLeft,
		LastPoints: g.lastPoints,
		Score:      g.score,
		Correct:    g.correct,
		Percentage: g.percentageLocked(),
	}
	if g.phase == TriviaQuestion || g.phase == TriviaFeedback {
		q := g.questions[g.index]
		st.Question = &TriviaQuestionView{
			ID:         q.ID,
			Prompt:     q.Prompt,
			Options:    q.Options,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
		if g.phase == TriviaFeedback {
			correct, selected := q.Correct, g.selected
			st.Question.Correct = &correct
			st.Selected = &selected
		}
	}
	return st
}

// Apply dispatches "start" {category, difficulty} and "answer" {index}.
func (g *Trivia) Apply(action string, params map[string]any) error {
	switch action {
	case "start":
		return g.Start(paramString(params, "category"), paramString(params, "difficulty"))
	case "answer":
		i, err := paramInt(params, "index")
		if err != nil {
			return err
		}
		return g.Answer(i)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
