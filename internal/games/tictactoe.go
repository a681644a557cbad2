package games

import (
	"fmt"
	"time"

	"github.com/MJE43/gamehub-go/internal/engine"
)

// Mark is the content of a board slot.
type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

// Board is the 3x3 grid in row-major order.
type Board [9]Mark

// Result is the outcome of a board: a winning mark, a draw or nothing yet.
type Result string

const (
	NoResult Result = ""
	WinX     Result = "X"
	WinO     Result = "O"
	Draw     Result = "draw"
)

// TicTacToeMode selects the opponent.
type TicTacToeMode string

const (
	ModeAI    TicTacToeMode = "ai"
	ModeHuman TicTacToeMode = "human"
)

var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

var corners = []int{0, 2, 6, 8}

const (
	centerSlot  = 4
	aiMoveDelay = 500 * time.Millisecond
	winPoints   = 100
)

// CheckWinner reports the mark of a uniform line, a draw when the board is
// full, or NoResult.
func CheckWinner(b Board) Result {
	for _, line := range winningLines {
		m := b[line[0]]
		if m != Empty && m == b[line[1]] && m == b[line[2]] {
			return Result(m)
		}
	}
	for _, m := range b {
		if m == Empty {
			return NoResult
		}
	}
	return Draw
}

func (b Board) open() []int {
	var slots []int
	for i, m := range b {
		if m == Empty {
			slots = append(slots, i)
		}
	}
	return slots
}

// completingMove returns an open slot that wins the board for m, or -1.
func (b Board) completingMove(m Mark) int {
	for _, slot := range b.open() {
		test := b
		test[slot] = m
		if CheckWinner(test) == Result(m) {
			return slot
		}
	}
	return -1
}

// AIMove picks the opponent's move for O: win, block, center, a random
// corner, then any random open slot. It returns -1 on a full board.
func AIMove(b Board, rnd *engine.Source) int {
	if slot := b.completingMove(MarkO); slot >= 0 {
		return slot
	}
	if slot := b.completingMove(MarkX); slot >= 0 {
		return slot
	}
	if b[centerSlot] == Empty {
		return centerSlot
	}
	var open []int
	for _, c := range corners {
		if b[c] == Empty {
			open = append(open, c)
		}
	}
	if len(open) > 0 {
		return engine.Pick(rnd, open)
	}
	if open = b.open(); len(open) > 0 {
		return engine.Pick(rnd, open)
	}
	return -1
}

// TicTacToeMove is one entry in the move history.
type TicTacToeMove struct {
	Number int  `json:"number"`
	Player Mark `json:"player"`
	Slot   int  `json:"slot"`
}

// TicTacToe is a board plus the running tallies across games.
type TicTacToe struct {
	session

	board       Board
	current     Mark
	result      Result
	mode        TicTacToeMode
	history     []TicTacToeMove
	playerScore int
	aiScore     int
}

// TicTacToeState is the display snapshot.
type TicTacToeState struct {
	Board       Board           `json:"board"`
	Current     Mark            `json:"current"`
	Result      Result          `json:"result"`
	Mode        TicTacToeMode   `json:"mode"`
	History     []TicTacToeMove `json:"history"`
	PlayerScore int             `json:"player_score"`
	AIScore     int             `json:"ai_score"`
	Thinking    bool            `json:"thinking"`
}

var ticTacToeSpec = GameSpec{
	ID:          "tictactoe",
	Name:        "Tic-Tac-Toe",
	Description: "Play against the AI or a friend",
}

// NewTicTacToe creates a game against the AI with X to move.
func NewTicTacToe(deps Deps) *TicTacToe {
	g := &TicTacToe{current: MarkX, mode: ModeAI}
	g.init(deps, ticTacToeSpec.ID)
	return g
}

func newTicTacToeFromParams(deps Deps, params map[string]any) (Game, error) {
	g := NewTicTacToe(deps)
	if mode := paramString(params, "mode"); mode != "" {
		if err := g.SetMode(TicTacToeMode(mode)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Spec returns metadata about the tic-tac-toe game.
func (g *TicTacToe) Spec() GameSpec {
	return ticTacToeSpec
}

// Move places the current player's mark. In AI mode only X moves by hand.
func (g *TicTacToe) Move(slot int) error {
	if slot < 0 || slot >= len(g.board) {
		return fmt.Errorf("%w: slot %d", ErrInvalidIndex, slot)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.mode == ModeAI && g.current == MarkO {
		return nil
	}
	if !g.placeLocked(slot, g.current) {
		return nil
	}
	if g.result != NoResult {
		return nil
	}
	g.current = other(g.current)
	if g.mode == ModeAI && g.current == MarkO {
		g.sched.After(aiMoveDelay, func() {
			if g.result != NoResult {
				return
			}
			if slot := AIMove(g.board, g.deps.Random); slot >= 0 && g.placeLocked(slot, MarkO) {
				g.current = MarkX
			}
		})
	}
	return nil
}

func other(m Mark) Mark {
	if m == MarkX {
		return MarkO
	}
	return MarkX
}

// placeLocked writes a mark and records the result. Occupied slots and
// finished boards are rejected.
func (g *TicTacToe) placeLocked(slot int, m Mark) bool {
	if g.board[slot] != Empty || g.result != NoResult {
		return false
	}
	g.board[slot] = m
	g.history = append(g.history, TicTacToeMove{Number: len(g.history) + 1, Player: m, Slot: slot})

	g.result = CheckWinner(g.board)
	switch {
	case g.result == WinX:
		g.playerScore += winPoints
		g.award(winPoints)
	case g.result == WinO && g.mode == ModeAI:
		g.aiScore += winPoints
	}
	return true
}

// NewGame clears the board and the history. Tallies are kept.
func (g *TicTacToe) NewGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.newGameLocked()
}

func (g *TicTacToe) newGameLocked() {
	g.sched.Reset()
	g.board = Board{}
	g.current = MarkX
	g.result = NoResult
	g.history = nil
}

// ResetScores clears both tallies and the history.
func (g *TicTacToe) ResetScores() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.playerScore = 0
	g.aiScore = 0
	g.history = nil
}

// SetMode switches between AI and two-player mode and starts a new game.
func (g *TicTacToe) SetMode(mode TicTacToeMode) error {
	if mode != ModeAI && mode != ModeHuman {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidParams, mode)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mode = mode
	g.newGameLocked()
	return nil
}

// Snapshot returns a copy of the current state
func (g *TicTacToe) Snapshot() any {
	return g.State()
}

// State returns the typed snapshot.
func (g *TicTacToe) State() TicTacToeState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return TicTacToeState{
		Board:       g.board,
		Current:     g.current,
		Result:      g.result,
		Mode:        g.mode,
		History:     append([]TicTacToeMove(nil), g.history...),
		PlayerScore: g.playerScore,
		AIScore:     g.aiScore,
		Thinking:    g.mode == ModeAI && g.current == MarkO && g.result == NoResult,
	}
}

// Apply dispatches "move" {index}, "new_game", "reset_scores" and "mode" {mode}.
func (g *TicTacToe) Apply(action string, params map[string]any) error {
	switch action {
	case "move":
		i, err := paramInt(params, "index")
		if err != nil {
			return err
		}
		return g.Move(i)
	case "new_game":
		g.NewGame()
	case "reset_scores":
		g.ResetScores()
	case "mode":
		return g.SetMode(TicTacToeMode(paramString(params, "mode")))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return nil
}
