package games

import (
	"errors"
	"testing"
	"time"
)

func targetIDs(st IconMatchState) []int {
	var ids []int
	for _, it := range st.Items {
		if it.Symbol == st.Target && !it.Consumed {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func missID(st IconMatchState) int {
	for _, it := range st.Items {
		if it.Symbol != st.Target {
			return it.ID
		}
	}
	return -1
}

func TestIconMatchGridComposition(t *testing.T) {
	rig := newTestRig(t, "icons")
	g := NewIconMatch(rig.deps)
	for i := 0; i < 50; i++ {
		g.Start()
		st := g.State()
		if len(st.Items) != 12 {
			t.Fatalf("expected 12 items, got %d", len(st.Items))
		}
		n := len(targetIDs(st))
		if n < 2 || n > 4 {
			t.Errorf("expected 2-4 targets, got %d", n)
		}
		for id, it := range st.Items {
			if it.ID != id {
				t.Errorf("item %d has id %d", id, it.ID)
			}
		}
	}
}

func TestIconMatchCorrectClicksBuildStreak(t *testing.T) {
	rig := newTestRig(t, "icons")
	g := NewIconMatch(rig.deps)
	g.Start()

	ids := targetIDs(g.State())
	for _, id := range ids {
		if err := g.Click(id); err != nil {
			t.Fatal(err)
		}
	}

	deltas := rig.scores.list()
	for i, d := range deltas {
		if want := 10 + i*2; d != want {
			t.Errorf("click %d: expected %d points, got %d", i, want, d)
		}
	}
	st := g.State()
	if st.Streak != len(ids) || st.BestStreak != len(ids) {
		t.Errorf("expected streak and best streak %d, got %d/%d", len(ids), st.Streak, st.BestStreak)
	}
}

func TestIconMatchConsumedItemIgnored(t *testing.T) {
	rig := newTestRig(t, "icons")
	g := NewIconMatch(rig.deps)
	g.Start()

	id := targetIDs(g.State())[0]
	g.Click(id)
	g.Click(id)
	if n := len(rig.scores.list()); n != 1 {
		t.Errorf("expected a consumed item to score once, scored %d times", n)
	}
}

func TestIconMatchMissResetsStreakAndCostsTime(t *testing.T) {
	rig := newTestRig(t, "icons")
	g := NewIconMatch(rig.deps)
	g.Start()

	g.Click(targetIDs(g.State())[0])
	g.Click(missID(g.State()))

	st := g.State()
	if st.Streak != 0 {
		t.Errorf("expected streak reset to 0, got %d", st.Streak)
	}
	if st.BestStreak != 1 {
		t.Errorf("expected best streak 1, got %d", st.BestStreak)
	}
	if st.TimeLeft != 27 {
		t.Errorf("expected 27 seconds left, got %d", st.TimeLeft)
	}
}

func TestIconMatchNewRoundAddsCappedTime(t *testing.T) {
	rig := newTestRig(t, "icons")
	g := NewIconMatch(rig.deps)
	g.Start()

	for _, id := range targetIDs(g.State()) {
		g.Click(id)
	}
	rig.clock.Advance(iconNextRoundDelay)

	st := g.State()
	if st.Round != 2 {
		t.Errorf("expected round 2, got %d", st.Round)
	}
	if st.TimeLeft != 35 {
		t.Errorf("expected 35 seconds after bonus, got %d", st.TimeLeft)
	}
	if len(targetIDs(st)) < 2 {
		t.Error("expected fresh unconsumed targets in the new round")
	}

	g.mu.Lock()
	g.timeLeft = 58
	g.mu.Unlock()
	for _, id := range targetIDs(g.State()) {
		g.Click(id)
	}
	rig.clock.Advance(iconNextRoundDelay)
	if got := g.State().TimeLeft; got != 60 {
		t.Errorf("expected time capped at 60, got %d", got)
	}
}

func TestIconMatchCountdownEndsGame(t *testing.T) {
	rig := newTestRig(t, "icons")
	g := NewIconMatch(rig.deps)
	g.Start()
	g.Click(targetIDs(g.State())[0])

	rig.clock.Advance(29 * time.Second)
	if st := g.State(); st.Phase != IconMatchPlaying || st.TimeLeft != 1 {
		t.Fatalf("expected playing with 1s left, got %s/%d", st.Phase, st.TimeLeft)
	}
	rig.clock.Advance(time.Second)

	st := g.State()
	if st.Phase != IconMatchOver {
		t.Fatalf("expected game over, got %s", st.Phase)
	}
	if st.BestStreak != 1 {
		t.Errorf("expected best streak 1 recorded, got %d", st.BestStreak)
	}

	scored := rig.scores.total()
	for _, id := range targetIDs(st) {
		g.Click(id)
	}
	if rig.scores.total() != scored {
		t.Error("clicks after game over must not score")
	}
}

func TestIconMatchPenaltyFloorsAtZero(t *testing.T) {
	rig := newTestRig(t, "icons")
	g := NewIconMatch(rig.deps)
	g.Start()
	g.mu.Lock()
	g.timeLeft = 2
	g.mu.Unlock()

	g.Click(missID(g.State()))
	st := g.State()
	if st.TimeLeft != 0 || st.Phase != IconMatchOver {
		t.Errorf("expected time 0 and game over, got %d/%s", st.TimeLeft, st.Phase)
	}
}

func TestIconMatchClickOutOfRange(t *testing.T) {
	rig := newTestRig(t, "icons")
	g := NewIconMatch(rig.deps)
	g.Start()
	if err := g.Click(12); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
}
