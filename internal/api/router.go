package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check (no auth required)
		r.Get("/health", s.handleHealth)

		// Auth endpoints (no auth required)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		// WebSocket upgrade. Browsers cannot set an Authorization header on
		// an upgrade request, so auth is the single-use ticket from
		// POST /auth/ws-ticket, validated in the handler.
		r.Get("/ws", s.handleWebSocket)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/auth/me", s.handleMe)
			// WS ticket requires authentication - user must be logged in to request a ticket
			r.Post("/auth/ws-ticket", s.handleWSTicket)

			// Room endpoints
			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", s.handleListRooms)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.handleGetRoom)
					r.Post("/controls/{control}", s.handleToggleControl)
					r.With(s.requireRole("admin")).Put("/status", s.handleSetRoomStatus)

					// In-room controller link
					r.Route("/link", func(r chi.Router) {
						r.Get("/", s.handleGetLink)
						r.Post("/connect", s.handleLinkConnect)
						r.Post("/disconnect", s.handleLinkDisconnect)
						r.Post("/commands", s.handleLinkCommand)
					})
				})
			})

			// Booking endpoints
			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", s.handleListBookings)
				r.Post("/", s.handleCreateBooking)
				r.Get("/{id}", s.handleGetBooking)
			})

			// Room suggestions
			r.Post("/suggestions", s.handleSuggest)

			// Admin endpoints
			r.With(s.requireRole("admin")).Get("/admin/stats", s.handleStats)
		})
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"hotel":   s.hotel.Name,
		"version": s.version,
	})
}
