// Package http implements the REST facade of the progress hub engine. It is
// an engine boundary, not a presentation layer: handlers translate JSON to
// commands and queries and translate domain errors back to status codes.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hsc-elite/progress-hub/internal/application/command"
	"github.com/hsc-elite/progress-hub/internal/application/query"
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/infrastructure/syncer"
	"github.com/hsc-elite/progress-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SERVER CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config contains HTTP server configuration.
type Config struct {
	// Host - address to bind (default: "0.0.0.0").
	Host string

	// Port - port to listen on (default: 8080).
	Port int

	// ReadTimeout - maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout - maximum duration for writing the response.
	WriteTimeout time.Duration

	// IdleTimeout - maximum duration for idle connections.
	IdleTimeout time.Duration

	// AllowedOrigins - allowed origins for CORS.
	AllowedOrigins []string

	// ShareBaseURL - base used when building share links.
	ShareBaseURL string
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		AllowedOrigins: []string{"*"},
	}
}

// Address returns the server address string.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ══════════════════════════════════════════════════════════════════════════════
// DEPENDENCIES
// ══════════════════════════════════════════════════════════════════════════════

// Dependencies contains everything the handlers need.
type Dependencies struct {
	// Command Handlers (CQRS Write Side)
	SignUp           *command.SignUpHandler
	LogIn            *command.LogInHandler
	LogOut           *command.LogOutHandler
	ToggleProgress   *command.ToggleProgressHandler
	FollowPeer       *command.FollowPeerHandler
	RestoreProfile   *command.RestoreProfileHandler
	ProcessShareLink *command.ProcessShareLinkHandler

	// Query Handlers (CQRS Read Side)
	GetProfile     *query.GetProfileHandler
	GetStats       *query.GetStatsHandler
	GetLevels      *query.GetLevelsHandler
	GetShareLink   *query.GetShareLinkHandler
	GetPeerBoard   *query.GetPeerBoardHandler
	GetPeerProfile *query.GetPeerProfileHandler
	ExplainTopic   *query.ExplainTopicHandler

	// Store resolves the active session for authenticated routes.
	Store profile.Store

	// Syncer exposes the passive cloud status. May be nil.
	Syncer *syncer.Syncer

	// Logger for request logging.
	Logger *logger.Logger
}

// ══════════════════════════════════════════════════════════════════════════════
// SERVER
// ══════════════════════════════════════════════════════════════════════════════

// Server represents the HTTP server.
type Server struct {
	config     Config
	deps       Dependencies
	httpServer *http.Server
	router     chi.Router
	logger     *logger.Logger
}

// NewServer creates a new HTTP server with the given configuration and dependencies.
func NewServer(config Config, deps Dependencies) *Server {
	s := &Server{
		config: config,
		deps:   deps,
		logger: deps.Logger,
	}
	if s.logger == nil {
		s.logger = logger.Default()
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:         config.Address(),
		Handler:      s.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// ──────────────────────────────────────────────────────────────────────────────
// ROUTING
// ──────────────────────────────────────────────────────────────────────────────

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", s.handleSignUp)
		r.Post("/auth/login", s.handleLogIn)
		r.Post("/auth/logout", s.handleLogOut)

		r.Get("/me", s.handleMe)
		r.Get("/stats", s.handleStats)
		r.Get("/levels", s.handleLevels)

		r.Post("/progress/topic", s.handleToggleTopic)
		r.Post("/progress/milestone", s.handleToggleMilestone)

		r.Get("/share", s.handleShare)
		r.Post("/follow", s.handleFollow)
		r.Post("/restore", s.handleRestore)
		r.Post("/link", s.handleShareLink)
		r.Get("/board", s.handleBoard)
		r.Get("/peers/{username}", s.handlePeerProfile)

		r.Get("/explain", s.handleExplain)
	})

	return r
}

// ──────────────────────────────────────────────────────────────────────────────
// LIFECYCLE
// ──────────────────────────────────────────────────────────────────────────────

// Start begins serving. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logger.String("addr", s.config.Address()))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
