package games

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRhythmAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		expected []int
		actual   []int
		accuracy string
		points   int
	}{
		{"perfect", []int{1000, 1000}, []int{1000, 1000}, "100", 500},
		{"partial", []int{1000, 1000}, []int{1100, 500}, "70", 350},
		{"floored at zero", []int{100}, []int{300}, "0", 0},
		{"missing gap", []int{1000, 1000}, []int{1000}, "50", 250},
		{"fractional", []int{300, 300, 300}, []int{310, 300, 300}, "98.888889", 494},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := RhythmAccuracy(tt.expected, tt.actual)
			if !acc.Round(6).Equal(decimal.RequireFromString(tt.accuracy)) {
				t.Errorf("expected accuracy %s, got %s", tt.accuracy, acc)
			}
			if got := RhythmPoints(acc); got != tt.points {
				t.Errorf("expected %d points, got %d", tt.points, got)
			}
		})
	}
}

func rhythmPlaybackTime(pattern []int) time.Duration {
	var d time.Duration
	for _, ms := range pattern {
		d += time.Duration(ms) * time.Millisecond
	}
	return d + rhythmBeatDuration
}

// tapPattern taps the pattern back with the given per-gap offset.
func tapPattern(rig *testRig, g *Rhythm, pattern []int, skew time.Duration) {
	g.Tap()
	for _, ms := range pattern {
		rig.clock.Advance(time.Duration(ms)*time.Millisecond + skew)
		g.Tap()
	}
}

func TestRhythmPlayback(t *testing.T) {
	rig := newTestRig(t, "rhythm")
	g := NewRhythm(rig.deps)
	g.Start()

	st := g.State()
	if len(st.Pattern) != 3 {
		t.Fatalf("expected 3 intervals at level 1, got %d", len(st.Pattern))
	}
	for _, ms := range st.Pattern {
		if ms < 500 || ms >= 2500 {
			t.Errorf("level 1 interval %d out of range", ms)
		}
	}

	rig.clock.Advance(rhythmStartDelay)
	if st := g.State(); st.Beat != 0 || st.Phase != RhythmPlaying {
		t.Errorf("expected first beat at lead-in, got %+v", st)
	}
	g.Tap()
	if g.State().Taps != 0 {
		t.Error("taps during playback must be ignored")
	}

	rig.clock.Advance(rhythmPlaybackTime(st.Pattern))
	if st := g.State(); st.Phase != RhythmRecording {
		t.Fatalf("expected recording after playback, got %s", st.Phase)
	}
	tones := rig.tones.Tones()
	if len(tones) != 4 {
		t.Fatalf("expected 4 beats for 3 intervals, got %d", len(tones))
	}
	for _, tone := range tones {
		if tone.Frequency != rhythmBeatFreq || tone.Duration != rhythmBeatDuration {
			t.Errorf("unexpected beat tone %+v", tone)
		}
	}
}

func TestRhythmPerfectRun(t *testing.T) {
	rig := newTestRig(t, "rhythm")
	g := NewRhythm(rig.deps)
	g.Start()
	rig.clock.Advance(rhythmStartDelay)

	for level := 1; level <= rhythmMaxLevel; level++ {
		pattern := g.State().Pattern
		if level > 1 {
			if len(pattern) != level+2 {
				t.Fatalf("level %d: expected %d intervals, got %d", level, level+2, len(pattern))
			}
			for _, ms := range pattern {
				if ms < 300 || ms >= 1800 {
					t.Errorf("level %d interval %d out of range", level, ms)
				}
			}
		}
		rig.clock.Advance(rhythmPlaybackTime(pattern))
		tapPattern(rig, g, pattern, 0)

		st := g.State()
		if st.LastAccuracy != 100 || st.LastPoints != 500 {
			t.Fatalf("level %d: expected 100%% for 500, got %v/%d", level, st.LastAccuracy, st.LastPoints)
		}
		if level < rhythmMaxLevel {
			if st.Phase != RhythmScored {
				t.Fatalf("level %d: expected scored, got %s", level, st.Phase)
			}
			rig.clock.Advance(rhythmNextDelay)
		}
	}

	st := g.State()
	if st.Phase != RhythmFinished {
		t.Fatalf("expected finished, got %s", st.Phase)
	}
	if want := []int{500, 500, 500, 300}; !equalInts(rig.scores.list(), want) {
		t.Errorf("expected deltas %v, got %v", want, rig.scores.list())
	}
}

func TestRhythmNoBonusBelowThreshold(t *testing.T) {
	rig := newTestRig(t, "rhythm")
	g := NewRhythm(rig.deps)
	g.Start()
	g.mu.Lock()
	g.level = rhythmMaxLevel
	g.pattern = []int{1000, 1000}
	g.mu.Unlock()
	rig.clock.Advance(rhythmStartDelay + rhythmPlaybackTime([]int{1000, 1000}))

	// every gap 300ms late: 70% accuracy
	tapPattern(rig, g, []int{1000, 1000}, 300*time.Millisecond)
	st := g.State()
	if st.Phase != RhythmFinished {
		t.Fatalf("expected finished, got %s", st.Phase)
	}
	if want := []int{350}; !equalInts(rig.scores.list(), want) {
		t.Errorf("expected deltas %v, got %v", want, rig.scores.list())
	}
}

func TestRhythmRestartCancelsPlayback(t *testing.T) {
	rig := newTestRig(t, "rhythm")
	g := NewRhythm(rig.deps)
	g.Start()
	rig.clock.Advance(rhythmStartDelay)
	if err := g.Apply("start", nil); err != nil {
		t.Fatal(err)
	}
	rig.clock.Advance(rhythmStartDelay - time.Millisecond)
	if n := len(rig.tones.Tones()); n != 1 {
		t.Errorf("stale beats played after restart: %d tones", n)
	}
	if err := g.Apply("shake", nil); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}
