package hub

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MJE43/gamehub-go/internal/audio"
	"github.com/MJE43/gamehub-go/internal/clock"
	"github.com/MJE43/gamehub-go/internal/engine"
	"github.com/MJE43/gamehub-go/internal/games"
	"github.com/MJE43/gamehub-go/internal/hunts"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownGame     = games.ErrUnknownGame
)

// Options configures a Hub. Zero values fall back to a real clock, silent
// audio, random seeds, a fresh hunt catalogue and a stdout logger.
type Options struct {
	Clock  clock.Clock
	Tones  audio.ToneService
	Seed   string
	Hunts  *hunts.Store
	Logger *log.Logger
}

// Hub owns the running game sessions and the shared session score.
type Hub struct {
	clock  clock.Clock
	tones  audio.ToneService
	seed   string
	hunts  *hunts.Store
	logger *log.Logger
	events *broadcaster

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
	started  uint64

	scoreMu sync.Mutex
	score   int
}

type session struct {
	id        uuid.UUID
	gameID    string
	seed      string
	createdAt time.Time
	game      games.Game
}

// SessionInfo is the API view of a session.
type SessionInfo struct {
	ID        uuid.UUID      `json:"id"`
	Game      games.GameSpec `json:"game"`
	Seed      string         `json:"seed"`
	CreatedAt time.Time      `json:"created_at"`
	State     any            `json:"state"`
}

// New creates a hub.
func New(opts Options) *Hub {
	h := &Hub{
		clock:    opts.Clock,
		tones:    opts.Tones,
		seed:     opts.Seed,
		hunts:    opts.Hunts,
		logger:   opts.Logger,
		events:   newBroadcaster(),
		sessions: make(map[uuid.UUID]*session),
	}
	if h.clock == nil {
		h.clock = clock.NewReal()
	}
	if h.tones == nil {
		h.tones = audio.Silent{}
	}
	if h.hunts == nil {
		h.hunts = hunts.NewStore()
	}
	if h.logger == nil {
		h.logger = log.New(os.Stdout, "[HUB] ", log.LstdFlags)
	}
	return h
}

// Games lists the registered games.
func (h *Hub) Games() []games.GameSpec {
	return games.ListGames()
}

// Hunts returns the hunt catalogue backing hunt sessions.
func (h *Hub) Hunts() *hunts.Store {
	return h.hunts
}

// Score returns the running session score.
func (h *Hub) Score() int {
	h.scoreMu.Lock()
	defer h.scoreMu.Unlock()
	return h.score
}

// ResetScore zeroes the session score. Running games are not touched.
func (h *Hub) ResetScore() {
	h.scoreMu.Lock()
	h.score = 0
	h.scoreMu.Unlock()

	h.logger.Printf("score_reset")
	h.events.publish(Event{Type: EventScoreReset, Timestamp: h.clock.Now()})
}

// scoreSink returns the score callback for one session. Games call it
// while holding their own lock, so it must never lock a game.
func (h *Hub) scoreSink(id uuid.UUID, gameID string) games.ScoreFunc {
	return func(delta int) {
		h.scoreMu.Lock()
		h.score += delta
		total := h.score
		h.scoreMu.Unlock()

		h.events.publish(Event{
			Type:      EventScore,
			SessionID: id,
			Game:      gameID,
			Delta:     delta,
			Score:     total,
			Timestamp: h.clock.Now(),
		})
	}
}

// randomFor builds the per-session random source. With a configured seed
// every session draws from its own stream of that seed, so a run can be
// reproduced.
func (h *Hub) randomFor(gameID string, n uint64) *engine.Source {
	if h.seed == "" {
		return engine.NewRandomSource(gameID)
	}
	return engine.NewSource(h.seed, fmt.Sprintf("%s:%d", gameID, n))
}

// StartSession creates and starts a session of the given game.
func (h *Hub) StartSession(gameID string, params map[string]any) (SessionInfo, error) {
	spec, ok := games.GetGame(gameID)
	if !ok {
		return SessionInfo{}, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}

	h.mu.Lock()
	h.started++
	n := h.started
	h.mu.Unlock()

	id := uuid.New()
	rnd := h.randomFor(gameID, n)
	deps := games.Deps{
		Clock:  h.clock,
		Tones:  h.tones,
		Random: rnd,
		Score:  h.scoreSink(id, gameID),
		Hunts:  h.hunts,
	}
	game, err := games.New(gameID, deps, params)
	if err != nil {
		return SessionInfo{}, err
	}

	s := &session{
		id:        id,
		gameID:    gameID,
		seed:      rnd.Seed(),
		createdAt: h.clock.Now().UTC(),
		game:      game,
	}
	h.mu.Lock()
	h.sessions[id] = s
	h.mu.Unlock()

	h.logger.Printf("session_started id=%s game=%s", id, gameID)
	info := h.info(s, spec)
	h.events.publish(Event{
		Type:      EventSessionStarted,
		SessionID: id,
		Game:      gameID,
		Score:     h.Score(),
		State:     info.State,
		Timestamp: h.clock.Now(),
	})
	return info, nil
}

func (h *Hub) lookup(id uuid.UUID) (*session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

func (h *Hub) info(s *session, spec games.GameSpec) SessionInfo {
	return SessionInfo{
		ID:        s.id,
		Game:      spec,
		Seed:      s.seed,
		CreatedAt: s.createdAt,
		State:     s.game.Snapshot(),
	}
}

// Session returns a snapshot of one session.
func (h *Hub) Session(id uuid.UUID) (SessionInfo, error) {
	s, err := h.lookup(id)
	if err != nil {
		return SessionInfo{}, err
	}
	return h.info(s, s.game.Spec()), nil
}

// Sessions returns every running session, oldest first.
func (h *Hub) Sessions() []SessionInfo {
	h.mu.RLock()
	list := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		list = append(list, s)
	}
	h.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].createdAt.Before(list[j].createdAt) })
	out := make([]SessionInfo, 0, len(list))
	for _, s := range list {
		out = append(out, h.info(s, s.game.Spec()))
	}
	return out
}

// Act applies a player action to a session and returns its new state.
func (h *Hub) Act(id uuid.UUID, action string, params map[string]any) (SessionInfo, error) {
	s, err := h.lookup(id)
	if err != nil {
		return SessionInfo{}, err
	}
	if params == nil {
		params = map[string]any{}
	}
	if err := s.game.Apply(action, params); err != nil {
		return SessionInfo{}, err
	}

	info := h.info(s, s.game.Spec())
	h.events.publish(Event{
		Type:      EventSessionUpdated,
		SessionID: id,
		Game:      s.gameID,
		Score:     h.Score(),
		State:     info.State,
		Timestamp: h.clock.Now(),
	})
	return info, nil
}

// EndSession closes a session and cancels its pending transitions.
func (h *Hub) EndSession(id uuid.UUID) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	s.game.Close()
	h.logger.Printf("session_ended id=%s game=%s", id, s.gameID)
	h.events.publish(Event{
		Type:      EventSessionEnded,
		SessionID: id,
		Game:      s.gameID,
		Score:     h.Score(),
		Timestamp: h.clock.Now(),
	})
	return nil
}

// Subscribe registers for events. The returned cancel func must be called
// when the subscriber goes away.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	return h.events.subscribe(buffer)
}

// Subscribers returns the number of active subscribers.
func (h *Hub) Subscribers() int {
	return h.events.count()
}

// Close ends every session and closes all subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[uuid.UUID]*session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.game.Close()
	}
	h.events.closeAll()
	h.logger.Printf("hub_closed sessions=%d", len(sessions))
}
