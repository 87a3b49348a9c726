/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Logger:     Request logging
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Cross-origin requests for browser clients

ROUTES:
  GET  /api/health          Liveness
  GET  /api/rates/daily     Daily rate for an APY
  POST /api/maturity        Maturity date from offsets
  POST /api/compound        Quote: maturity then compounding
  POST /api/statement       Day-by-day ledger

SECURITY NOTE:
  No authentication middleware. Every endpoint is a pure calculation.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/compound/cmd/serve.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured. origins lists
// the CORS origins allowed to call the API.
func NewRouter(h *Handler, origins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/rates/daily", h.DailyRate)
		r.Post("/maturity", h.Maturity)
		r.Post("/compound", h.Compound)
		r.Post("/statement", h.Statement)
	})

	return r
}
