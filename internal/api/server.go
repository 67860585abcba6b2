// Package api provides the HTTP REST API and WebSocket server for AccessHub Core.
//
// It exposes the room registry, booking ledger, identity directory, device
// link simulator, and suggestion advisor to clients (guest apps, admin
// dashboards), plus real-time room and link updates over WebSocket.
//
// The server follows the same lifecycle pattern as other infrastructure components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/accesshub-core/internal/advisor"
	"github.com/nerrad567/accesshub-core/internal/booking"
	"github.com/nerrad567/accesshub-core/internal/devicelink"
	"github.com/nerrad567/accesshub-core/internal/identity"
	"github.com/nerrad567/accesshub-core/internal/infrastructure/config"
	"github.com/nerrad567/accesshub-core/internal/infrastructure/logging"
	"github.com/nerrad567/accesshub-core/internal/room"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// SuggestionAdvisor produces room suggestions from guest preferences.
// Satisfied by *advisor.Client; an interface so handlers can be tested
// without a live advisor endpoint.
type SuggestionAdvisor interface {
	Suggest(ctx context.Context, in advisor.SuggestionInput) (*advisor.Suggestion, error)
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config   config.APIConfig
	WS       config.WebSocketConfig
	Security config.SecurityConfig
	Hotel    config.HotelConfig
	Logger   *logging.Logger
	Rooms    *room.Registry
	Links    *devicelink.Simulator
	Bookings *booking.Ledger
	Users    *identity.Directory
	Advisor  SuggestionAdvisor // nil when the advisor is disabled
	Version  string
}

// Server is the HTTP API server for AccessHub Core.
//
// It manages the HTTP listener, routes, middleware, and WebSocket hub.
// The server is created with New() and started with Start().
type Server struct {
	cfg      config.APIConfig
	wsCfg    config.WebSocketConfig
	secCfg   config.SecurityConfig
	hotel    config.HotelConfig
	logger   *logging.Logger
	rooms    *room.Registry
	links    *devicelink.Simulator
	bookings *booking.Ledger
	users    *identity.Directory
	advisor  SuggestionAdvisor
	version  string
	server   *http.Server
	hub      *Hub
	tickets  *ticketStore
	cancel   context.CancelFunc // cancels background goroutines on Close()
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Rooms == nil {
		return nil, fmt.Errorf("room registry is required")
	}
	if deps.Links == nil {
		return nil, fmt.Errorf("device link simulator is required")
	}
	if deps.Bookings == nil {
		return nil, fmt.Errorf("booking ledger is required")
	}
	if deps.Users == nil {
		return nil, fmt.Errorf("identity directory is required")
	}
	// Advisor is optional; the suggestions endpoint reports unavailable without it.

	s := &Server{
		cfg:      deps.Config,
		wsCfg:    deps.WS,
		secCfg:   deps.Security,
		hotel:    deps.Hotel,
		logger:   deps.Logger,
		rooms:    deps.Rooms,
		links:    deps.Links,
		bookings: deps.Bookings,
		users:    deps.Users,
		advisor:  deps.Advisor,
		version:  deps.Version,
		tickets:  newTicketStore(),
	}
	s.hub = NewHub(deps.WS, deps.Logger)

	return s, nil
}

// Hub returns the server's WebSocket hub.
//
// The hub implements room.Notifier and devicelink.Notifier, so callers wire
// live updates by registering it on the registry and the simulator:
//
//	registry.SetNotifier(server.Hub())
//	simulator.SetNotifier(server.Hub())
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start begins listening for HTTP connections.
//
// It starts the WebSocket hub and ticket cleanup goroutines and launches
// the HTTP listener in the background. The server is stopped with Close().
func (s *Server) Start(ctx context.Context) error {
	// Internal context so Close() can stop background goroutines
	// independently of the parent context.
	var srvCtx context.Context
	srvCtx, s.cancel = context.WithCancel(ctx)

	go s.hub.Run(srvCtx)
	go s.tickets.cleanLoop(srvCtx)

	router := s.buildRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           router,
		ReadTimeout:       s.cfg.GetReadTimeout(),
		ReadHeaderTimeout: s.cfg.GetReadTimeout(),
		WriteTimeout:      s.cfg.GetWriteTimeout(),
		IdleTimeout:       s.cfg.GetIdleTimeout(),
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	s.logger.Info("API server started", "address", s.server.Addr)
	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	// Cancel background goroutines (hub, ticket cleanup)
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck verifies the API server is running and responsive.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}
	return nil
}
