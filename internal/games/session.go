package games

import (
	"sync"

	"github.com/MJE43/gamehub-go/internal/clock"
)

// session is the state every game embeds: its lock, its collaborators and
// the scheduler that owns its delayed transitions.
type session struct {
	mu    sync.Mutex
	deps  Deps
	sched *clock.Scheduler
}

func (s *session) init(deps Deps, stream string) {
	s.deps = deps.withDefaults(stream)
	s.sched = clock.NewScheduler(s.deps.Clock, &s.mu)
}

// award credits points to the score sink. Zero deltas are not reported.
func (s *session) award(points int) {
	if points != 0 {
		s.deps.Score(points)
	}
}

// Close cancels every pending delayed transition.
func (s *session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sched.Reset()
}
