package hub

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types published to subscribers.
const (
	EventSessionStarted = "session_started"
	EventSessionUpdated = "session_updated"
	EventSessionEnded   = "session_ended"
	EventScore          = "score"
	EventScoreReset     = "score_reset"
)

// Event is one notification for the display surface.
type Event struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
	Game      string    `json:"game,omitempty"`
	Delta     int       `json:"delta,omitempty"`
	Score     int       `json:"score"`
	State     any       `json:"state,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// broadcaster fans events out to subscribers. Each subscriber has its own
// buffered channel; when it is full the event is dropped for that
// subscriber so a slow reader never blocks a game.
type broadcaster struct {
	mu      sync.Mutex
	subs    map[chan Event]struct{}
	dropped uint64
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[chan Event]struct{})}
}

func (b *broadcaster) subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[ch]; ok {
				delete(b.subs, ch)
				close(ch)
			}
		})
	}
	return ch, cancel
}

func (b *broadcaster) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.dropped++
		}
	}
}

func (b *broadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// closeAll closes every subscriber channel.
func (b *broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		close(ch)
		delete(b.subs, ch)
	}
}
