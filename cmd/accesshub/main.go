// AccessHub Core - Hotel Access Hub backend
//
// This is the main entry point for the AccessHub Core application.
// AccessHub is a hotel booking and in-room control prototype:
//   - In-memory room registry with live status and control state
//   - Simulated in-room controller links (connect, disconnect, commands)
//   - Append-only booking ledger with atomic room handoff
//   - JWT-backed identity directory for guests and admins
//   - Optional AI-backed room suggestion advisor
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/accesshub-core/internal/advisor"
	"github.com/nerrad567/accesshub-core/internal/api"
	"github.com/nerrad567/accesshub-core/internal/booking"
	"github.com/nerrad567/accesshub-core/internal/devicelink"
	"github.com/nerrad567/accesshub-core/internal/identity"
	"github.com/nerrad567/accesshub-core/internal/infrastructure/config"
	"github.com/nerrad567/accesshub-core/internal/infrastructure/logging"
	"github.com/nerrad567/accesshub-core/internal/room"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting AccessHub Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Initialise room registry with the fixed inventory
	registry := room.NewRegistry()
	registry.SetLogger(log)
	registry.Initialize(room.SeedRooms())
	log.Info("room registry initialised", "rooms", registry.Count())

	// Initialise controller links, one per room, all disconnected
	links := devicelink.NewSimulator(cfg.DeviceLink)
	links.SetLogger(log)
	links.Initialize(registry.RoomIDs())
	log.Info("device links initialised",
		"links", len(links.States()),
		"connect_delay", cfg.DeviceLink.ConnectDelay(),
	)

	// Booking ledger flips room status through the registry
	ledger := booking.NewLedger(registry)
	ledger.SetLogger(log)

	// Identity directory with the seeded demo accounts
	users := identity.NewDirectory()
	users.SetLogger(log)
	users.Initialize(identity.SeedUsers())
	log.Info("identity directory initialised", "users", users.Count())

	// Suggestion advisor (optional)
	var suggestions api.SuggestionAdvisor
	if cfg.Advisor.Enabled {
		client := advisor.NewClient(cfg.Advisor)
		client.SetLogger(log)
		suggestions = client
		log.Info("suggestion advisor enabled", "url", cfg.Advisor.URL, "model", cfg.Advisor.Model)
	} else {
		log.Info("suggestion advisor disabled")
	}

	// API server
	server, err := api.New(api.Deps{
		Config:   cfg.API,
		WS:       cfg.WebSocket,
		Security: cfg.Security,
		Hotel:    cfg.Hotel,
		Logger:   log,
		Rooms:    registry,
		Links:    links,
		Bookings: ledger,
		Users:    users,
		Advisor:  suggestions,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	// Relay room and link changes to WebSocket subscribers
	registry.SetNotifier(server.Hub())
	links.SetNotifier(server.Hub())

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")
	log.Info("AccessHub Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses ACCESSHUB_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("ACCESSHUB_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
