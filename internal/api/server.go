// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

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

	"github.com/libraryofui/uilib/internal/catalog/episode"
	"github.com/libraryofui/uilib/internal/catalog/novel"
	"github.com/libraryofui/uilib/internal/community/notice"
	"github.com/libraryofui/uilib/internal/community/support"
	"github.com/libraryofui/uilib/internal/library/marks"
	"github.com/libraryofui/uilib/internal/library/overview"
	"github.com/libraryofui/uilib/internal/library/progress"
	"github.com/libraryofui/uilib/internal/platform/config"
	"github.com/libraryofui/uilib/internal/platform/constants"
	"github.com/libraryofui/uilib/internal/platform/middleware"
	"github.com/libraryofui/uilib/internal/users/account"
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

	// Novel handles the public catalogue listing, search and detail.
	Novel *novel.Handler

	// Episode serves episode reading content.
	Episode *episode.Handler

	// Overview assembles the per-reader library view.
	Overview *overview.Handler

	// Progress records and reports reading positions.
	Progress *progress.Handler

	// Marks flips and reports bookmark/favourite state.
	Marks *marks.Handler

	// Notice serves platform announcements.
	Notice *notice.Handler

	// Support accepts reader support requests.
	Support *support.Handler

	// Account clears a reader's library data.
	Account *account.Handler
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
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/novels", h.Novel.Routes())
		api.Mount("/episodes", h.Episode.Routes())
		api.Mount("/library", h.Overview.Routes())
		api.Mount("/last-read", h.Progress.Routes())
		api.Mount("/bookmarks", h.Marks.BookmarkRoutes())
		api.Mount("/favourites", h.Marks.FavouriteRoutes())
		api.Mount("/notices", h.Notice.Routes())
		api.Mount("/support", h.Support.Routes())
		api.Mount("/account", h.Account.Routes())
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
