package hunts

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHuntNotFound  = errors.New("hunt not found")
	ErrLevelNotFound = errors.New("level not found")
	ErrHuntInvalid   = errors.New("hunt invalid")
)

// --------- Data models ---------

type Level struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Clue     string    `json:"clue"`
	Answer   string    `json:"answer"`
	Hint     string    `json:"hint,omitempty"`
	Location string    `json:"location,omitempty"`
}

type Hunt struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Levels      []Level   `json:"levels"`
	Saved       bool      `json:"saved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HuntUpdate carries the fields to change; nil fields are left alone.
type HuntUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// LevelUpdate carries the level fields to change; nil fields are left alone.
type LevelUpdate struct {
	Title    *string `json:"title"`
	Clue     *string `json:"clue"`
	Answer   *string `json:"answer"`
	Hint     *string `json:"hint"`
	Location *string `json:"location"`
}

func (h *Hunt) clone() Hunt {
	c := *h
	c.Levels = append([]Level(nil), h.Levels...)
	return c
}

// Validate reports whether the hunt can be saved: it needs a title and at
// least one level.
func (h Hunt) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrHuntInvalid)
	}
	if len(h.Levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", ErrHuntInvalid)
	}
	return nil
}

// --------- Store ---------

// Store is the in-memory hunt catalogue. Nothing survives a restart.
type Store struct {
	mu    sync.RWMutex
	hunts map[uuid.UUID]*Hunt
	order []uuid.UUID
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		hunts: make(map[uuid.UUID]*Hunt),
		now:   time.Now,
	}
}

func (s *Store) get(id uuid.UUID) (*Hunt, error) {
	h, ok := s.hunts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHuntNotFound, id)
	}
	return h, nil
}

// Create starts a new draft hunt.
func (s *Store) Create(title, description string) Hunt {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	h := &Hunt{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Levels:      []Level{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.hunts[h.ID] = h
	s.order = append(s.order, h.ID)
	return h.clone()
}

// List returns every hunt in creation order.
func (s *Store) List() []Hunt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Hunt, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.hunts[id].clone())
	}
	return out
}

func (s *Store) Get(id uuid.UUID) (Hunt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, err := s.get(id)
	if err != nil {
		return Hunt{}, err
	}
	return h.clone(), nil
}

func (s *Store) Update(id uuid.UUID, u HuntUpdate) (Hunt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.get(id)
	if err != nil {
		return Hunt{}, err
	}
	if u.Title != nil {
		h.Title = *u.Title
	}
	if u.Description != nil {
		h.Description = *u.Description
	}
	h.UpdatedAt = s.now().UTC()
	return h.clone(), nil
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.get(id); err != nil {
		return err
	}
	delete(s.hunts, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddLevel appends an empty level titled "Level N".
func (s *Store) AddLevel(huntID uuid.UUID) (Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.get(huntID)
	if err != nil {
		return Level{}, err
	}
	l := Level{
		ID:    uuid.New(),
		Title: fmt.Sprintf("Level %d", len(h.Levels)+1),
	}
	h.Levels = append(h.Levels, l)
	h.UpdatedAt = s.now().UTC()
	return l, nil
}

func (s *Store) UpdateLevel(huntID, levelID uuid.UUID, u LevelUpdate) (Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.get(huntID)
	if err != nil {
		return Level{}, err
	}
	for i := range h.Levels {
		l := &h.Levels[i]
		if l.ID != levelID {
			continue
		}
		for _, f := range []struct {
			dst *string
			src *string
		}{
			{&l.Title, u.Title},
			{&l.Clue, u.Clue},
			{&l.Answer, u.Answer},
			{&l.Hint, u.Hint},
			{&l.Location, u.Location},
		} {
			if f.src != nil {
				*f.dst = *f.src
			}
		}
		h.UpdatedAt = s.now().UTC()
		return *l, nil
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, levelID)
}

func (s *Store) DeleteLevel(huntID, levelID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.get(huntID)
	if err != nil {
		return err
	}
	for i, l := range h.Levels {
		if l.ID == levelID {
			h.Levels = append(h.Levels[:i], h.Levels[i+1:]...)
			h.UpdatedAt = s.now().UTC()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrLevelNotFound, levelID)
}

// Save validates the hunt and marks it playable.
func (s *Store) Save(id uuid.UUID) (Hunt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.get(id)
	if err != nil {
		return Hunt{}, err
	}
	if err := h.Validate(); err != nil {
		return Hunt{}, err
	}
	h.Saved = true
	h.UpdatedAt = s.now().UTC()
	return h.clone(), nil
}

// Playable returns a copy of a saved hunt that is still valid.
func (s *Store) Playable(id uuid.UUID) (Hunt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, err := s.get(id)
	if err != nil {
		return Hunt{}, err
	}
	if !h.Saved {
		return Hunt{}, fmt.Errorf("%w: hunt %s has not been saved", ErrHuntInvalid, id)
	}
	if err := h.Validate(); err != nil {
		return Hunt{}, err
	}
	return h.clone(), nil
}
