package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MJE43/gamehub-go/internal/games"
)

// pathID parses a uuid path parameter, writing a validation error on failure.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		s.errorHandler.HandleInvalidID(w, r, name, raw)
		return uuid.Nil, false
	}
	return id, true
}

// GET /api/v1/games
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, GamesResponse{
		Games:         s.hub.Games(),
		EngineVersion: EngineVersion,
	})
}

// GET /api/v1/score
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, ScoreResponse{Score: s.hub.Score()})
}

// POST /api/v1/score/reset
func (s *Server) handleResetScore(w http.ResponseWriter, r *http.Request) {
	s.hub.ResetScore()
	s.writeJSON(w, http.StatusOK, ScoreResponse{Score: s.hub.Score()})
}

// GET /api/v1/trivia/categories
func (s *Server) handleTriviaCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, CategoriesResponse{Categories: games.Categories()})
}

// GET /api/v1/sessions
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	list := s.hub.Sessions()
	s.writeJSON(w, http.StatusOK, SessionsResponse{Sessions: list, Count: len(list)})
}

// POST /api/v1/sessions
func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	req.Game = strings.TrimSpace(req.Game)
	if req.Game == "" {
		s.errorHandler.HandleValidationError(w, r, "game", "game is required")
		return
	}

	info, err := s.hub.StartSession(req.Game, req.Params)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, info)
}

// GET /api/v1/sessions/{id}
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	info, err := s.hub.Session(id)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, info)
}

// DELETE /api/v1/sessions/{id}
func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := s.hub.EndSession(id); err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, DeletedResponse{ID: id, Deleted: true})
}

// POST /api/v1/sessions/{id}/actions
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	var req ActionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Action == "" {
		s.errorHandler.HandleValidationError(w, r, "action", "action is required")
		return
	}

	info, err := s.hub.Act(id, req.Action, req.Params)
	if err != nil {
		s.errorHandler.HandleError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, info)
}
