package games

import (
	"sync"
	"testing"
	"time"

	"github.com/MJE43/gamehub-go/internal/audio"
	"github.com/MJE43/gamehub-go/internal/clock"
	"github.com/MJE43/gamehub-go/internal/engine"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// scoreLog collects every delta a game awards.
type scoreLog struct {
	mu     sync.Mutex
	deltas []int
}

func (s *scoreLog) add(delta int) {
	s.mu.Lock()
	s.deltas = append(s.deltas, delta)
	s.mu.Unlock()
}

func (s *scoreLog) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := 0
	for _, d := range s.deltas {
		sum += d
	}
	return sum
}

func (s *scoreLog) list() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.deltas...)
}

type testRig struct {
	clock  *clock.Fake
	tones  *audio.Recorder
	scores *scoreLog
	deps   Deps
}

func newTestRig(t *testing.T, seed string) *testRig {
	t.Helper()
	r := &testRig{
		clock:  clock.NewFake(testEpoch),
		tones:  audio.NewRecorder(),
		scores: &scoreLog{},
	}
	r.deps = Deps{
		Clock:  r.clock,
		Tones:  r.tones,
		Random: engine.NewSource(seed, t.Name()),
		Score:  r.scores.add,
	}
	return r
}
