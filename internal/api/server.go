// Copyright (c) 2026 Reserva. All rights reserved.

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

	"github.com/hotelia/reserva/internal/core/booking"
	"github.com/hotelia/reserva/internal/core/city"
	"github.com/hotelia/reserva/internal/core/hotel"
	"github.com/hotelia/reserva/internal/core/image"
	"github.com/hotelia/reserva/internal/core/review"
	"github.com/hotelia/reserva/internal/platform/config"
	"github.com/hotelia/reserva/internal/platform/constants"
	"github.com/hotelia/reserva/internal/platform/middleware"
	"github.com/hotelia/reserva/internal/users/user"
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

	// Metrics is the optional Prometheus /metrics handler. Nil disables the endpoint.
	Metrics http.Handler

	// User handles registration, login, and account management.
	User *user.Handler

	// City manages the city catalogue.
	City *city.Handler

	// Hotel manages the hotel catalogue.
	Hotel *hotel.Handler

	// Image manages hotel photos.
	Image *image.Handler

	// Booking handles reservations.
	Booking *booking.Handler

	// Review handles hotel reviews.
	Review *review.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Authentication is not global: each domain router receives the authenticate
// middleware and applies it to exactly the routes that require it.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.Metrics())
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}

	// # Application API
	authenticate := middleware.Authenticate(verifier)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/users", h.User.Routes(authenticate))
		api.Mount("/cities", h.City.Routes(authenticate))
		api.Mount("/hotels", h.Hotel.Routes(authenticate))
		api.Mount("/images", h.Image.Routes(authenticate))
		api.Mount("/bookings", h.Booking.Routes(authenticate))
		api.Mount("/reviews", h.Review.Routes(authenticate))
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
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
