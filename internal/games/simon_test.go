package games

import (
	"errors"
	"testing"
	"time"
)

func simonReplayTime(n int) time.Duration {
	return time.Duration(n)*simonToneDuration + time.Duration(n-1)*simonToneGap
}

// playSimonRound waits out the replay and taps the whole sequence back.
func playSimonRound(t *testing.T, rig *testRig, g *Simon) {
	t.Helper()
	rig.clock.Advance(simonReplayTime(len(g.sequence)))
	if st := g.State(); st.Phase != SimonInput {
		t.Fatalf("expected input phase after replay, got %s", st.Phase)
	}
	for _, b := range append([]int(nil), g.sequence...) {
		if err := g.Tap(b); err != nil {
			t.Fatalf("Tap(%d) failed: %v", b, err)
		}
	}
}

func TestSimonGame(t *testing.T) {
	g := NewSimon(Deps{})
	spec := g.Spec()
	if spec.ID != "simon" {
		t.Errorf("expected ID 'simon', got '%s'", spec.ID)
	}
	if st := g.State(); st.Phase != SimonIdle {
		t.Errorf("expected idle phase, got %s", st.Phase)
	}
}

func TestSimonFirstRoundReplaysOneTone(t *testing.T) {
	rig := newTestRig(t, "simon")
	g := NewSimon(rig.deps)
	g.Start()

	rig.clock.Advance(simonStartDelay)
	if n := len(g.sequence); n != 1 {
		t.Fatalf("expected sequence of 1, got %d", n)
	}
	if st := g.State(); st.Phase != SimonReplaying {
		t.Errorf("expected replaying phase, got %s", st.Phase)
	}

	rig.clock.Advance(simonToneDuration)
	tones := rig.tones.Tones()
	if len(tones) != 1 {
		t.Fatalf("expected 1 tone, got %d", len(tones))
	}
	if tones[0].Frequency != simonFrequencies[g.sequence[0]] || tones[0].Duration != simonToneDuration {
		t.Errorf("unexpected tone %+v", tones[0])
	}
	if st := g.State(); st.Phase != SimonInput {
		t.Errorf("expected input phase, got %s", st.Phase)
	}
}

func TestSimonIgnoresInputWhileReplaying(t *testing.T) {
	rig := newTestRig(t, "simon")
	g := NewSimon(rig.deps)
	g.Start()
	rig.clock.Advance(simonStartDelay)

	wrong := (g.sequence[0] + 1) % simonButtons
	if err := g.Tap(wrong); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st := g.State(); st.Phase != SimonReplaying || st.Entered != 0 {
		t.Errorf("tap during replay must be ignored, got %+v", st)
	}
}

func TestSimonCorrectReplayAwardsLevelPoints(t *testing.T) {
	for level := 1; level <= simonMaxLevel; level++ {
		rig := newTestRig(t, "simon-levels")
		g := NewSimon(rig.deps)
		g.Start()
		rig.clock.Advance(simonStartDelay)

		for l := 1; l < level; l++ {
			playSimonRound(t, rig, g)
			rig.clock.Advance(simonNextRoundDelay)
		}

		before := rig.scores.total()
		if len(g.sequence) != level {
			t.Fatalf("level %d: expected sequence length %d, got %d", level, level, len(g.sequence))
		}
		playSimonRound(t, rig, g)
		deltas := rig.scores.list()

		if level < simonMaxLevel {
			if got := rig.scores.total() - before; got != level*50 {
				t.Errorf("level %d: expected %d points, got %d", level, level*50, got)
			}
			rig.clock.Advance(simonNextRoundDelay)
			if len(g.sequence) != level+1 {
				t.Errorf("level %d: expected sequence length %d after success, got %d", level, level+1, len(g.sequence))
			}
		} else {
			last := deltas[len(deltas)-2:]
			if last[0] != simonMaxLevel*50 || last[1] != simonWinBonus {
				t.Errorf("expected final deltas [%d %d], got %v", simonMaxLevel*50, simonWinBonus, last)
			}
			if st := g.State(); st.Phase != SimonWon {
				t.Errorf("expected won phase at max level, got %s", st.Phase)
			}
		}
	}
}

func TestSimonWrongTapEndsGame(t *testing.T) {
	rig := newTestRig(t, "simon")
	g := NewSimon(rig.deps)
	g.Start()
	rig.clock.Advance(simonStartDelay)
	playSimonRound(t, rig, g)
	rig.clock.Advance(simonNextRoundDelay)
	rig.clock.Advance(simonReplayTime(2))

	if err := g.Tap(g.sequence[0]); err != nil {
		t.Fatal(err)
	}
	wrong := (g.sequence[1] + 1) % simonButtons
	if err := g.Tap(wrong); err != nil {
		t.Fatal(err)
	}
	if st := g.State(); st.Phase != SimonLost {
		t.Fatalf("expected lost phase, got %s", st.Phase)
	}

	// not recoverable: further taps are ignored
	scored := rig.scores.total()
	g.Tap(g.sequence[1])
	if rig.scores.total() != scored {
		t.Error("taps after game over must not score")
	}
	rig.clock.Advance(10 * time.Second)
	if st := g.State(); st.Phase != SimonLost {
		t.Errorf("expected game to stay lost, got %s", st.Phase)
	}
}

func TestSimonTapOutOfRange(t *testing.T) {
	g := NewSimon(Deps{})
	if err := g.Tap(4); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
	if err := g.Tap(-1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestSimonRestartCancelsPendingRound(t *testing.T) {
	rig := newTestRig(t, "simon")
	g := NewSimon(rig.deps)
	g.Start()
	rig.clock.Advance(simonStartDelay)
	playSimonRound(t, rig, g)

	// restart before the next round is scheduled to begin
	g.Start()
	rig.clock.Advance(simonStartDelay)
	if n := len(g.sequence); n != 1 {
		t.Errorf("expected a fresh sequence of 1 after restart, got %d", n)
	}
	rig.clock.Advance(simonNextRoundDelay * 5)
	if n := len(g.sequence); n != 1 {
		t.Errorf("stale round callback grew the sequence to %d", n)
	}
}

func TestSimonApply(t *testing.T) {
	rig := newTestRig(t, "simon")
	g := NewSimon(rig.deps)
	if err := g.Apply("start", nil); err != nil {
		t.Fatal(err)
	}
	rig.clock.Advance(simonStartDelay + simonToneDuration)
	if err := g.Apply("tap", map[string]any{"index": float64(g.sequence[0])}); err != nil {
		t.Fatal(err)
	}
	if rig.scores.total() != 50 {
		t.Errorf("expected 50 points, got %d", rig.scores.total())
	}
	if err := g.Apply("jump", nil); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
	if err := g.Apply("tap", map[string]any{}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}
