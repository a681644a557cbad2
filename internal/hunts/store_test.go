package hunts

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestCreateAndList(t *testing.T) {
	s := NewStore()
	a := s.Create("City Tour", "")
	b := s.Create("Office", "after hours")

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 hunts, got %d", len(list))
	}
	if list[0].ID != a.ID || list[1].ID != b.ID {
		t.Error("expected hunts in creation order")
	}
	if a.Saved {
		t.Error("new hunt must start as a draft")
	}
}

func TestLevelCRUD(t *testing.T) {
	s := NewStore()
	h := s.Create("City Tour", "")

	l1, err := s.AddLevel(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	l2, _ := s.AddLevel(h.ID)
	if l1.Title != "Level 1" || l2.Title != "Level 2" {
		t.Errorf("expected default titles, got %q and %q", l1.Title, l2.Title)
	}

	updated, err := s.UpdateLevel(h.ID, l1.ID, LevelUpdate{Clue: strPtr("Capital of France"), Answer: strPtr("Paris")})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Answer != "Paris" || updated.Title != "Level 1" {
		t.Errorf("unexpected level after update: %+v", updated)
	}

	if err := s.DeleteLevel(h.ID, l2.ID); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(h.ID)
	if len(got.Levels) != 1 || got.Levels[0].Clue != "Capital of France" {
		t.Errorf("unexpected levels %+v", got.Levels)
	}

	if err := s.DeleteLevel(h.ID, l2.ID); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
	if _, err := s.AddLevel(uuid.New()); !errors.Is(err, ErrHuntNotFound) {
		t.Errorf("expected ErrHuntNotFound, got %v", err)
	}
}

func TestSaveValidation(t *testing.T) {
	s := NewStore()
	h := s.Create("  ", "")

	if _, err := s.Save(h.ID); !errors.Is(err, ErrHuntInvalid) {
		t.Errorf("expected ErrHuntInvalid for blank title, got %v", err)
	}
	s.Update(h.ID, HuntUpdate{Title: strPtr("City Tour")})
	if _, err := s.Save(h.ID); !errors.Is(err, ErrHuntInvalid) {
		t.Errorf("expected ErrHuntInvalid without levels, got %v", err)
	}
	if _, err := s.Playable(h.ID); !errors.Is(err, ErrHuntInvalid) {
		t.Errorf("unsaved hunt must not be playable, got %v", err)
	}

	s.AddLevel(h.ID)
	saved, err := s.Save(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !saved.Saved {
		t.Error("expected hunt marked saved")
	}
	if _, err := s.Playable(h.ID); err != nil {
		t.Errorf("expected playable hunt, got %v", err)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	h := s.Create("City Tour", "")
	s.AddLevel(h.ID)

	got, _ := s.Get(h.ID)
	got.Levels[0].Answer = "mutated"
	got.Title = "mutated"

	again, _ := s.Get(h.ID)
	if again.Levels[0].Answer != "" || again.Title != "City Tour" {
		t.Error("mutating a returned hunt must not change the store")
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	h := s.Create("City Tour", "")
	if err := s.Delete(h.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(h.ID); !errors.Is(err, ErrHuntNotFound) {
		t.Errorf("expected ErrHuntNotFound, got %v", err)
	}
	if len(s.List()) != 0 {
		t.Error("expected empty list after delete")
	}
	if err := s.Delete(h.ID); !errors.Is(err, ErrHuntNotFound) {
		t.Errorf("expected ErrHuntNotFound, got %v", err)
	}
}
