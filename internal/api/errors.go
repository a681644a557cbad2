package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MJE43/gamehub-go/internal/games"
	"github.com/MJE43/gamehub-go/internal/hub"
	"github.com/MJE43/gamehub-go/internal/hunts"
)

// ErrorBuilder helps construct structured errors with context
type ErrorBuilder struct {
	errType   string
	message   string
	context   map[string]any
	requestID string
}

// NewError creates a new error builder
func NewError(errType, message string) *ErrorBuilder {
	return &ErrorBuilder{
		errType: errType,
		message: message,
		context: make(map[string]any),
	}
}

// WithContext adds context information to the error
func (eb *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	eb.context[key] = value
	return eb
}

// WithRequestID adds request ID to the error
func (eb *ErrorBuilder) WithRequestID(requestID string) *ErrorBuilder {
	eb.requestID = requestID
	return eb
}

// WithCause adds the underlying cause error
func (eb *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	if err != nil {
		eb.context["cause"] = err.Error()
	}
	return eb
}

// Build creates the final EngineError
func (eb *ErrorBuilder) Build() EngineError {
	ctx := eb.context
	if len(ctx) == 0 {
		ctx = nil
	}
	return EngineError{
		Type:      eb.errType,
		Message:   eb.message,
		Context:   ctx,
		RequestID: eb.requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// errorMapping ties a sentinel error to its response type and status.
type errorMapping struct {
	target  error
	errType string
	status  int
}

// Checked in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{hub.ErrSessionNotFound, ErrTypeSessionNotFound, http.StatusNotFound},
	{games.ErrUnknownGame, ErrTypeGameNotFound, http.StatusNotFound},
	{games.ErrUnknownAction, ErrTypeUnknownAction, http.StatusBadRequest},
	{games.ErrInvalidIndex, ErrTypeInvalidParams, http.StatusBadRequest},
	{games.ErrInvalidParams, ErrTypeInvalidParams, http.StatusBadRequest},
	{games.ErrUnknownCategory, ErrTypeInvalidParams, http.StatusBadRequest},
	{games.ErrNotStarted, ErrTypeGameState, http.StatusConflict},
	{hunts.ErrHuntNotFound, ErrTypeHuntNotFound, http.StatusNotFound},
	{hunts.ErrLevelNotFound, ErrTypeLevelNotFound, http.StatusNotFound},
	{hunts.ErrHuntInvalid, ErrTypeHuntInvalid, http.StatusUnprocessableEntity},
	{context.DeadlineExceeded, ErrTypeTimeout, http.StatusGatewayTimeout},
}

// classify maps an error from the hub, the games or the hunt catalogue
// onto an error type and HTTP status.
func classify(err error) (string, int) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.errType, m.status
		}
	}
	return ErrTypeInternal, http.StatusInternalServerError
}

// ErrorHandler provides centralized error handling with logging
type ErrorHandler struct {
	logger *log.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *log.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleError classifies err and writes the matching response.
func (eh *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var engineErr EngineError
	if errors.As(err, &engineErr) {
		eh.logError(r, engineErr, http.StatusBadRequest)
		eh.writeErrorResponse(w, http.StatusBadRequest, engineErr)
		return
	}

	errType, status := classify(err)
	engineErr = NewError(errType, err.Error()).
		WithRequestID(middleware.GetReqID(r.Context())).
		WithContext("path", r.URL.Path).
		WithContext("method", r.Method).
		Build()

	eh.logError(r, engineErr, status)
	eh.writeErrorResponse(w, status, engineErr)
}

// HandleValidationError handles malformed request bodies and path params
func (eh *ErrorHandler) HandleValidationError(w http.ResponseWriter, r *http.Request, field, message string) {
	engineErr := NewError(ErrTypeValidation, fmt.Sprintf("Validation failed: %s", message)).
		WithRequestID(middleware.GetReqID(r.Context())).
		WithContext("field", field).
		WithContext("path", r.URL.Path).
		WithContext("method", r.Method).
		Build()

	eh.logError(r, engineErr, http.StatusBadRequest)
	eh.writeErrorResponse(w, http.StatusBadRequest, engineErr)
}

// HandleInvalidID handles a path parameter that is not a uuid
func (eh *ErrorHandler) HandleInvalidID(w http.ResponseWriter, r *http.Request, field, raw string) {
	engineErr := NewError(ErrTypeInvalidID, fmt.Sprintf("Malformed id %q", raw)).
		WithRequestID(middleware.GetReqID(r.Context())).
		WithContext("field", field).
		WithContext("path", r.URL.Path).
		Build()

	eh.logError(r, engineErr, http.StatusBadRequest)
	eh.writeErrorResponse(w, http.StatusBadRequest, engineErr)
}

// HandleTimeoutError handles a request that overran its deadline
func (eh *ErrorHandler) HandleTimeoutError(w http.ResponseWriter, r *http.Request, timeout time.Duration) {
	engineErr := NewError(ErrTypeTimeout, "Request timed out").
		WithRequestID(middleware.GetReqID(r.Context())).
		WithContext("timeout_ms", timeout.Milliseconds()).
		WithContext("path", r.URL.Path).
		WithContext("method", r.Method).
		Build()

	eh.logError(r, engineErr, http.StatusGatewayTimeout)
	eh.writeErrorResponse(w, http.StatusGatewayTimeout, engineErr)
}

// TimeoutHandler bounds each request's context by timeout. A handler that
// overruns without writing anything gets a structured timeout response.
func (eh *ErrorHandler) TimeoutHandler(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
				eh.HandleTimeoutError(w, r, timeout)
			}
		})
	}
}

// logError logs the error with a level derived from its category
func (eh *ErrorHandler) logError(r *http.Request, engineErr EngineError, status int) {
	category := GetErrorCategory(engineErr.Type)

	logLevel := "WARN"
	if status >= 500 {
		logLevel = "ERROR"
	}

	eh.logger.Printf(
		"error_occurred level=%s type=%s category=%s status=%d request_id=%s method=%s path=%s message=%q context=%+v",
		logLevel, engineErr.Type, category, status, engineErr.RequestID, r.Method, r.URL.Path, engineErr.Message, engineErr.Context,
	)
}

// writeErrorResponse writes the error response as JSON
func (eh *ErrorHandler) writeErrorResponse(w http.ResponseWriter, status int, engineErr EngineError) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Engine-Version", EngineVersion)
	w.Header().Set("X-Error-Type", engineErr.Type)
	w.Header().Set("X-Error-Category", string(GetErrorCategory(engineErr.Type)))
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(engineErr); err != nil {
		eh.logger.Printf("error_encode_failed type=%s err=%v", engineErr.Type, err)
	}
}

// RecoveryHandler provides panic recovery with structured error logging
func (eh *ErrorHandler) RecoveryHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				requestID := middleware.GetReqID(r.Context())
				eh.logger.Printf(
					"panic_recovered request_id=%s path=%s method=%s panic=%v",
					requestID, r.URL.Path, r.Method, rvr,
				)

				engineErr := NewError(ErrTypeInternal, "Internal server error").
					WithRequestID(requestID).
					WithContext("panic", fmt.Sprintf("%v", rvr)).
					WithContext("path", r.URL.Path).
					WithContext("method", r.Method).
					Build()

				eh.writeErrorResponse(w, http.StatusInternalServerError, engineErr)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
