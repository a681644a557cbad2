package api

import (
	"github.com/google/uuid"

	"github.com/MJE43/gamehub-go/internal/games"
	"github.com/MJE43/gamehub-go/internal/hub"
	"github.com/MJE43/gamehub-go/internal/hunts"
)

// EngineError represents a structured error response with context
type EngineError struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
}

// Error implements the error interface
func (e EngineError) Error() string {
	return e.Message
}

// Error types
const (
	// Input validation errors
	ErrTypeInvalidParams = "invalid_params"
	ErrTypeValidation    = "validation_error"
	ErrTypeInvalidID     = "invalid_id"

	// Hub errors
	ErrTypeGameNotFound    = "game_not_found"
	ErrTypeSessionNotFound = "session_not_found"
	ErrTypeUnknownAction   = "unknown_action"
	ErrTypeGameState       = "game_state_error"

	// Hunt catalogue errors
	ErrTypeHuntNotFound  = "hunt_not_found"
	ErrTypeLevelNotFound = "level_not_found"
	ErrTypeHuntInvalid   = "hunt_invalid"

	// System errors
	ErrTypeTimeout  = "timeout"
	ErrTypeInternal = "internal_error"
)

// ErrorCategory represents error categories for monitoring
type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "validation"
	CategoryGame       ErrorCategory = "game"
	CategorySystem     ErrorCategory = "system"
	CategoryTimeout    ErrorCategory = "timeout"
)

// GetErrorCategory returns the category for an error type
func GetErrorCategory(errType string) ErrorCategory {
	switch errType {
	case ErrTypeInvalidParams, ErrTypeValidation, ErrTypeInvalidID, ErrTypeHuntInvalid:
		return CategoryValidation
	case ErrTypeGameNotFound, ErrTypeSessionNotFound, ErrTypeUnknownAction, ErrTypeGameState,
		ErrTypeHuntNotFound, ErrTypeLevelNotFound:
		return CategoryGame
	case ErrTypeTimeout:
		return CategoryTimeout
	default:
		return CategorySystem
	}
}

// VersionInfo contains build version information
type VersionInfo struct {
	EngineVersion string `json:"engine_version"`
	GitCommit     string `json:"git_commit,omitempty"`
	BuildTime     string `json:"build_time,omitempty"`
}

// GamesResponse represents the games menu
type GamesResponse struct {
	Games         []games.GameSpec `json:"games"`
	EngineVersion string           `json:"engine_version"`
}

// ScoreResponse carries the running session score
type ScoreResponse struct {
	Score int `json:"score"`
}

// StartSessionRequest starts a game session
type StartSessionRequest struct {
	Game   string         `json:"game"`
	Params map[string]any `json:"params,omitempty"`
}

// ActionRequest applies a player action to a session
type ActionRequest struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params,omitempty"`
}

// SessionsResponse lists running sessions
type SessionsResponse struct {
	Sessions []hub.SessionInfo `json:"sessions"`
	Count    int               `json:"count"`
}

// CategoriesResponse lists the trivia categories
type CategoriesResponse struct {
	Categories []games.TriviaCategory `json:"categories"`
}

// CreateHuntRequest creates an empty hunt
type CreateHuntRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HuntsResponse lists the hunt catalogue
type HuntsResponse struct {
	Hunts []hunts.Hunt `json:"hunts"`
	Count int          `json:"count"`
}

// DeletedResponse acknowledges a delete
type DeletedResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}
