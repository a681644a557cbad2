package api

import (
	"net/http"
	"strings"

	"github.com/MJE43/gamehub-go/internal/hunts"
)

// GET /api/v1/hunts
func (s *Server) handleListHunts(w http.ResponseWriter, r *http.Request) {
	list := s.hub.Hunts().List()
	s.writeJSON(w, http.StatusOK, HuntsResponse{Hunts: list, Count: len(list)})
}

// POST /api/v1/hunts
func (s *Server) handleCreateHunt(w http.ResponseWriter, r *http.Request) {
	var req CreateHuntRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	h := s.hub.Hunts().Create(strings.TrimSpace(req.Title), req.Description)
	s.logger.Printf("hunt_created id=%s", h.ID)
	s.writeJSON(w, http.StatusCreated, h)
}

// GET /api/v1/hunts/{id}
func (s *Server) handleGetHunt(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	h, err := s.hub.Hunts().Get(id)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, h)
}

// PUT /api/v1/hunts/{id}
func (s *Server) handleUpdateHunt(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	var u hunts.HuntUpdate
	if !s.decodeJSON(w, r, &u) {
		return
	}
	h, err := s.hub.Hunts().Update(id, u)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, h)
}

// DELETE /api/v1/hunts/{id}
func (s *Server) handleDeleteHunt(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.hub.Hunts().Delete(id); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.logger.Printf("hunt_deleted id=%s", id)
	s.writeJSON(w, http.StatusOK, DeletedResponse{ID: id, Deleted: true})
}

// POST /api/v1/hunts/{id}/save
func (s *Server) handleSaveHunt(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	h, err := s.hub.Hunts().Save(id)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.logger.Printf("hunt_saved id=%s levels=%d", h.ID, len(h.Levels))
	s.writeJSON(w, http.StatusOK, h)
}

// POST /api/v1/hunts/{id}/levels
func (s *Server) handleAddLevel(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	lvl, err := s.hub.Hunts().AddLevel(id)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, lvl)
}

// PUT /api/v1/hunts/{id}/levels/{levelID}
func (s *Server) handleUpdateLevel(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	levelID, ok := s.pathID(w, r, "levelID")
	if !ok {
		return
	}
	var u hunts.LevelUpdate
	if !s.decodeJSON(w, r, &u) {
		return
	}
	lvl, err := s.hub.Hunts().UpdateLevel(id, levelID, u)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, lvl)
}

// DELETE /api/v1/hunts/{id}/levels/{levelID}
func (s *Server) handleDeleteLevel(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	levelID, ok := s.pathID(w, r, "levelID")
	if !ok {
		return
	}
	if err := s.hub.Hunts().DeleteLevel(id, levelID); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, DeletedResponse{ID: levelID, Deleted: true})
}
