package clock

import (
	"sync"
	"time"
)

// Scheduler runs delayed state transitions for one game. Every task runs
// under the owner's lock and only if the session token it captured is
// still current, so a callback left over from an abandoned round never
// touches a newer one.
//
// After, Every and Reset must be called with the owner's lock held.
type Scheduler struct {
	clock  Clock
	lock   sync.Locker
	token  uint64
	nextID uint64
	timers map[uint64]Timer
}

// NewScheduler creates a scheduler whose tasks run under lock.
func NewScheduler(c Clock, lock sync.Locker) *Scheduler {
	return &Scheduler{
		clock:  c,
		lock:   lock,
		timers: make(map[uint64]Timer),
	}
}

// Now returns the scheduler clock's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After runs fn after d unless the session is reset first.
func (s *Scheduler) After(d time.Duration, fn func()) {
	token := s.token
	s.nextID++
	id := s.nextID
	s.timers[id] = s.clock.AfterFunc(d, func() {
		s.lock.Lock()
		defer s.lock.Unlock()

		if s.token != token {
			return
		}
		delete(s.timers, id)
		fn()
	})
}

// Every runs fn every d until fn returns false or the session is reset.
func (s *Scheduler) Every(d time.Duration, fn func() bool) {
	var tick func()
	tick = func() {
		if fn() {
			s.After(d, tick)
		}
	}
	s.After(d, tick)
}

// Reset invalidates every pending task and starts a new session token.
func (s *Scheduler) Reset() {
	s.token++
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending returns the number of tasks that have not run yet.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
