package games

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/MJE43/gamehub-go/internal/hunts"
)

func TestMatchAnswer(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		want     bool
	}{
		{" Paris ", "paris", true},
		{"PARIS", "Paris", true},
		{"\tparis\n", "Paris", true},
		{"Straße", "STRASSE", true},
		{"Café", "café", true},
		{"Pari s", "paris", false},
		{"London", "paris", false},
	}
	for _, tt := range tests {
		if got := MatchAnswer(tt.input, tt.expected); got != tt.want {
			t.Errorf("MatchAnswer(%q, %q): expected %v, got %v", tt.input, tt.expected, tt.want, got)
		}
	}
}

func savedHunt(t *testing.T, levels ...hunts.Level) (*hunts.Store, hunts.Hunt) {
	t.Helper()
	store := hunts.NewStore()
	title := "City Tour"
	h := store.Create(title, "")
	for _, l := range levels {
		added, err := store.AddLevel(h.ID)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := store.UpdateLevel(h.ID, added.ID, hunts.LevelUpdate{
			Clue: &l.Clue, Answer: &l.Answer, Hint: &l.Hint,
		}); err != nil {
			t.Fatal(err)
		}
	}
	saved, err := store.Save(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	return store, saved
}

func TestHuntPlaythrough(t *testing.T) {
	rig := newTestRig(t, "hunt")
	_, h := savedHunt(t,
		hunts.Level{Clue: "Capital of France", Answer: "paris", Hint: "Eiffel"},
		hunts.Level{Clue: "Capital of Japan", Answer: "Tokyo"},
	)
	g := NewHuntPlayer(rig.deps, h)

	g.Submit("london")
	if st := g.State(); !st.Wrong || st.Level != 0 {
		t.Errorf("expected wrong answer on level 0, got %+v", st)
	}
	if rig.scores.total() != 0 {
		t.Error("wrong answers must not change the score")
	}

	g.Submit(" Paris ")
	if got := rig.scores.list(); len(got) != 1 || got[0] != 100 {
		t.Fatalf("expected 100 points, got %v", got)
	}
	if st := g.State(); st.Phase != HuntAdvancing {
		t.Fatalf("expected advancing, got %s", st.Phase)
	}

	// ignored while the advance is pending
	g.Submit("paris")
	if len(rig.scores.list()) != 1 {
		t.Error("submission during advance must be ignored")
	}

	rig.clock.Advance(huntAdvanceDelay)
	st := g.State()
	if st.Level != 1 || st.Phase != HuntPlaying || st.Current.Clue != "Capital of Japan" {
		t.Fatalf("expected level 1, got %+v", st)
	}

	g.Submit("tokyo")
	rig.clock.Advance(huntAdvanceDelay)
	if st := g.State(); st.Phase != HuntAdvancing {
		t.Errorf("completion bonus must wait for its own delay, got %s", st.Phase)
	}
	rig.clock.Advance(huntCompleteDelay - huntAdvanceDelay)

	st = g.State()
	if st.Phase != HuntFinished {
		t.Fatalf("expected finished, got %s", st.Phase)
	}
	if want := []int{100, 100, 500}; !equalInts(rig.scores.list(), want) {
		t.Errorf("expected deltas %v, got %v", want, rig.scores.list())
	}
	if st.Score != 700 || len(st.Completed) != 2 {
		t.Errorf("unexpected final state %+v", st)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHuntHintHalvesPoints(t *testing.T) {
	rig := newTestRig(t, "hunt")
	_, h := savedHunt(t,
		hunts.Level{Clue: "Capital of France", Answer: "paris", Hint: "Eiffel"},
		hunts.Level{Clue: "Capital of Japan", Answer: "Tokyo"},
	)
	g := NewHuntPlayer(rig.deps, h)

	if st := g.State(); st.Current.Hint != "" || !st.Current.HasHint {
		t.Errorf("hint must stay hidden until revealed, got %+v", st.Current)
	}
	g.RevealHint()
	if st := g.State(); st.Current.Hint != "Eiffel" {
		t.Errorf("expected revealed hint, got %q", st.Current.Hint)
	}
	g.Submit("PARIS")
	if rig.scores.total() != 50 {
		t.Errorf("expected 50 points with hint, got %d", rig.scores.total())
	}

	// level without a hint cannot reveal one
	rig.clock.Advance(huntAdvanceDelay)
	g.RevealHint()
	if st := g.State(); st.HintShown {
		t.Error("hint revealed on a level without one")
	}
}

func TestHuntBlankSubmissionIsNoop(t *testing.T) {
	rig := newTestRig(t, "hunt")
	_, h := savedHunt(t, hunts.Level{Clue: "c", Answer: "a"})
	g := NewHuntPlayer(rig.deps, h)

	g.Submit("   ")
	st := g.State()
	if st.Attempts != 0 || st.Wrong {
		t.Errorf("blank submission must be a no-op, got %+v", st)
	}
}

func TestHuntFactory(t *testing.T) {
	rig := newTestRig(t, "hunt")
	store, h := savedHunt(t, hunts.Level{Clue: "c", Answer: "a"})
	deps := rig.deps
	deps.Hunts = store

	game, err := New("hunt", deps, map[string]any{"hunt_id": h.ID.String()})
	if err != nil {
		t.Fatal(err)
	}
	if st := game.Snapshot().(HuntState); st.HuntID != h.ID || st.Levels != 1 {
		t.Errorf("unexpected snapshot %+v", st)
	}

	if _, err := New("hunt", deps, map[string]any{"hunt_id": "nope"}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
	if _, err := New("hunt", deps, map[string]any{"hunt_id": uuid.NewString()}); !errors.Is(err, hunts.ErrHuntNotFound) {
		t.Errorf("expected ErrHuntNotFound, got %v", err)
	}

	draft := store.Create("Draft", "")
	if _, err := New("hunt", deps, map[string]any{"hunt_id": draft.ID.String()}); !errors.Is(err, hunts.ErrHuntInvalid) {
		t.Errorf("expected ErrHuntInvalid for an unsaved hunt, got %v", err)
	}
}

func TestHuntRestart(t *testing.T) {
	rig := newTestRig(t, "hunt")
	_, h := savedHunt(t, hunts.Level{Clue: "c", Answer: "a"}, hunts.Level{Clue: "d", Answer: "b"})
	g := NewHuntPlayer(rig.deps, h)
	g.Submit("a")
	if err := g.Apply("restart", nil); err != nil {
		t.Fatal(err)
	}
	rig.clock.Advance(huntCompleteDelay)
	if st := g.State(); st.Level != 0 || st.Phase != HuntPlaying || st.Score != 0 {
		t.Errorf("expected a fresh run, got %+v", st)
	}
}
