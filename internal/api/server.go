package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/MJE43/gamehub-go/internal/hub"
)

// Options configures the API server.
type Options struct {
	// RequestTimeout bounds every non-streaming request
	RequestTimeout time.Duration
	// AllowedOrigins lists CORS and websocket origins; empty or "*" allows any
	AllowedOrigins []string
	Logger         *log.Logger
}

// Server exposes the game hub over HTTP.
type Server struct {
	hub          *hub.Hub
	errorHandler *ErrorHandler
	logger       *log.Logger
	origins      map[string]bool
	anyOrigin    bool
	timeout      time.Duration
	upgrader     websocket.Upgrader
	startTime    time.Time
	httpServer   *http.Server
}

// NewServer creates a new API server for the hub
func NewServer(h *hub.Hub, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "[API] ", log.LstdFlags|log.Lshortfile)
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	s := &Server{
		hub:          h,
		errorHandler: NewErrorHandler(logger),
		logger:       logger,
		origins:      make(map[string]bool),
		timeout:      opts.RequestTimeout,
		startTime:    time.Now(),
	}
	for _, o := range opts.AllowedOrigins {
		if o == "*" {
			s.anyOrigin = true
		}
		s.origins[o] = true
	}
	if len(s.origins) == 0 {
		s.anyOrigin = true
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	logger.Printf("server_created games=%d origins=%v timeout=%s", len(h.Games()), opts.AllowedOrigins, s.timeout)
	return s
}

// Routes sets up the HTTP routes with proper middleware
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.RequestLoggingMiddleware)
	r.Use(s.errorHandler.RecoveryHandler)
	r.Use(s.CORSMiddleware)

	r.Get("/health", s.handleHealthCheck)
	r.Get("/health/ready", s.handleReadiness)
	r.Get("/health/live", s.handleLiveness)
	r.Get("/version", s.handleVersion)

	r.Route("/api/v1", func(r chi.Router) {
		// The event stream is long-lived and must not inherit the request timeout.
		r.Get("/events", s.handleEvents)

		r.Group(func(r chi.Router) {
			r.Use(s.errorHandler.TimeoutHandler(s.timeout))

			r.Get("/games", s.handleListGames)
			r.Get("/score", s.handleScore)
			r.Post("/score/reset", s.handleResetScore)
			r.Get("/trivia/categories", s.handleTriviaCategories)

			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", s.handleListSessions)
				r.Post("/", s.handleStartSession)
				r.Get("/{id}", s.handleGetSession)
				r.Delete("/{id}", s.handleEndSession)
				r.Post("/{id}/actions", s.handleAction)
			})

			r.Route("/hunts", func(r chi.Router) {
				r.Get("/", s.handleListHunts)
				r.Post("/", s.handleCreateHunt)
				r.Get("/{id}", s.handleGetHunt)
				r.Put("/{id}", s.handleUpdateHunt)
				r.Delete("/{id}", s.handleDeleteHunt)
				r.Post("/{id}/save", s.handleSaveHunt)
				r.Post("/{id}/levels", s.handleAddLevel)
				r.Put("/{id}/levels/{levelID}", s.handleUpdateLevel)
				r.Delete("/{id}/levels/{levelID}", s.handleDeleteLevel)
			})
		})
	})

	return r
}

// Start begins listening in a goroutine. It returns when the socket is bound.
func (s *Server) Start(addr string) (net.Addr, error) {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Printf("serve_failed addr=%s err=%v", addr, err)
		}
	}()
	s.logger.Printf("listening addr=%s", ln.Addr())
	return ln.Addr(), nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// writeJSON writes a JSON response with proper headers
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Engine-Version", EngineVersion)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("response_encode_failed status=%d err=%v", status, err)
	}
}

// decodeJSON reads a request body into v, writing a validation error on
// failure. An empty body leaves v untouched.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.errorHandler.HandleValidationError(w, r, "body", "invalid JSON: "+err.Error())
		return false
	}
	return true
}
