package games

import (
	"errors"
	"testing"
)

func TestFrequencyScoring(t *testing.T) {
	tests := []struct {
		target, guess int
		points        int
	}{
		{440, 440, 1000},
		{440, 450, 990},
		{500, 445, 945},
		{200, 1200, 0},
		{999, 2000, 0},
		{300, 303, 997},
	}
	for _, tt := range tests {
		got := FrequencyPoints(FrequencyAccuracy(tt.target, tt.guess))
		if got != tt.points {
			t.Errorf("target %d guess %d: expected %d points, got %d", tt.target, tt.guess, tt.points, got)
		}
	}
}

func frequencyTarget(g *Frequency) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.target
}

func TestFrequencyRounds(t *testing.T) {
	rig := newTestRig(t, "frequency")
	g := NewFrequency(rig.deps)

	for round := 1; round <= frequencyRounds; round++ {
		st := g.State()
		if st.Round != round || st.Guess != frequencyStartGuess || st.Phase != FrequencyGuessing {
			t.Fatalf("round %d: unexpected state %+v", round, st)
		}
		target := frequencyTarget(g)
		if target < 200 || target >= 1000 {
			t.Errorf("target %d out of range", target)
		}
		g.SetGuess(target)
		g.Submit()
		if round < frequencyRounds {
			if st := g.State(); st.Phase != FrequencyFeedback || st.LastTarget != target {
				t.Fatalf("round %d: expected feedback revealing %d, got %+v", round, target, st)
			}
			// ignored during feedback
			g.Submit()
			rig.clock.Advance(frequencyNextDelay)
		}
	}

	st := g.State()
	if st.Phase != FrequencyFinished {
		t.Fatalf("expected finished, got %s", st.Phase)
	}
	if want := []int{1000, 1000, 1000, 1000, 1000, 200}; !equalInts(rig.scores.list(), want) {
		t.Errorf("expected deltas %v, got %v", want, rig.scores.list())
	}
}

func TestFrequencyNoBonusAtNinety(t *testing.T) {
	rig := newTestRig(t, "frequency")
	g := NewFrequency(rig.deps)
	g.mu.Lock()
	g.round = frequencyRounds
	g.target = 500
	g.mu.Unlock()

	g.SetGuess(600) // exactly 90%
	g.Submit()
	if want := []int{900}; !equalInts(rig.scores.list(), want) {
		t.Errorf("expected deltas %v, got %v", want, rig.scores.list())
	}
}

func TestFrequencyGuessClamped(t *testing.T) {
	g := NewFrequency(Deps{})
	g.SetGuess(50)
	if got := g.State().Guess; got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
	g.SetGuess(5000)
	if got := g.State().Guess; got != 2000 {
		t.Errorf("expected 2000, got %d", got)
	}
}

func TestFrequencyPlayback(t *testing.T) {
	rig := newTestRig(t, "frequency")
	g := NewFrequency(rig.deps)
	if err := g.Apply("play_target", nil); err != nil {
		t.Fatal(err)
	}
	if err := g.Apply("guess", map[string]any{"hz": float64(880)}); err != nil {
		t.Fatal(err)
	}
	g.Apply("play_guess", nil)

	tones := rig.tones.Tones()
	if len(tones) != 2 {
		t.Fatalf("expected 2 tones, got %d", len(tones))
	}
	if tones[0].Frequency != float64(frequencyTarget(g)) || tones[0].Duration != frequencyTargetTone {
		t.Errorf("unexpected target tone %+v", tones[0])
	}
	if tones[1].Frequency != 880 || tones[1].Duration != frequencyGuessTone {
		t.Errorf("unexpected guess tone %+v", tones[1])
	}
	if err := g.Apply("guess", nil); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}
