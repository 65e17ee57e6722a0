// Copyright (c) 2026 Toma Beauty. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tomabeauty/toma/internal/core/article"
	"github.com/tomabeauty/toma/internal/core/remedy"
	"github.com/tomabeauty/toma/internal/core/routine"
	"github.com/tomabeauty/toma/internal/core/section"
	"github.com/tomabeauty/toma/internal/core/tip"
	"github.com/tomabeauty/toma/internal/platform/config"
	"github.com/tomabeauty/toma/internal/platform/constants"
	"github.com/tomabeauty/toma/internal/platform/middleware"
	"github.com/tomabeauty/toma/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the admin gate routes (login, refresh, logout, me).
	Auth *auth.Handler

	// Article handles the editorial article catalog.
	Article *article.Handler

	// Routine handles morning/evening routines.
	Routine *routine.Handler

	// Remedy handles natural remedies.
	Remedy *remedy.Handler

	// Section serves the static page blocks.
	Section *section.Handler

	// Tip serves the rotating beauty tips.
	Tip *tip.Handler

	// Legacy serves the pre-versioning endpoint shapes consumed by the
	// original site build.
	Legacy *LegacyHandler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api", func(api chi.Router) {
		api.Route("/v1", func(v1 chi.Router) {
			v1.Mount("/auth", h.Auth.Routes())
			v1.Route("/articles", h.Article.RegisterRoutes)
			v1.Route("/routines", h.Routine.RegisterRoutes)
			v1.Route("/remedies", h.Remedy.RegisterRoutes)
			v1.Route("/sections", h.Section.RegisterRoutes)
			v1.Route("/tips", h.Tip.RegisterRoutes)
		})

		// Unversioned compatibility surface; see legacy.go.
		h.Legacy.RegisterRoutes(api)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
