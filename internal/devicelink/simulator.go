package devicelink

import (
	"fmt"
	"sync"
	"time"

	"github.com/nerrad567/accesshub-core/internal/infrastructure/config"
)

// Logger defines the logging interface used by the Simulator.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Notifier receives a callback after every link state or status-message
// change, including the intermediate states inside a delay window. It
// feeds the WebSocket hub so UIs can render "Connecting..." live.
type Notifier interface {
	LinkChanged(st LinkState)
}

// link is the per-room connection record.
//
// transition serialises Connect/Disconnect/SendCommand per room so no
// two transitions ever overlap on one room id. mu guards the observable
// fields so State() snapshots stay consistent while a transition sleeps.
type link struct {
	roomID     string
	transition sync.Mutex
	mu         sync.RWMutex
	state      ConnState
	message    string
}

// Simulator maintains one simulated wireless link per room. There is no
// real transport behind it: each operation flips the link through its
// state machine after a fixed configured delay, which gives the UI the
// asynchronous affordances of a real in-room controller.
//
// Operations block the caller for the duration of the simulated delay and
// are not cancellable: an initiated transition always runs to completion.
// Links for different rooms are fully independent.
type Simulator struct {
	cfg      config.DeviceLinkConfig
	logger   Logger
	notifier Notifier

	mu    sync.RWMutex
	links map[string]*link
}

// NewSimulator creates a simulator with the given delay configuration.
func NewSimulator(cfg config.DeviceLinkConfig) *Simulator {
	return &Simulator{
		cfg:    cfg,
		logger: noopLogger{},
		links:  make(map[string]*link),
	}
}

// SetLogger sets the logger for the simulator.
func (s *Simulator) SetLogger(logger Logger) {
	s.logger = logger
}

// SetNotifier sets the change notifier. Pass nil to disable notifications.
func (s *Simulator) SetNotifier(n Notifier) {
	s.notifier = n
}

// Initialize creates one disconnected link per room id, discarding any
// existing links. It is called alongside the room registry's Initialize
// so exactly one link exists per known room.
func (s *Simulator) Initialize(roomIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.links = make(map[string]*link, len(roomIDs))
	for _, id := range roomIDs {
		s.links[id] = &link{
			roomID:  id,
			state:   StateDisconnected,
			message: msgDisconnected,
		}
	}

	s.logger.Info("device links initialised", "count", len(roomIDs))
}

// State returns a snapshot of one room's link.
// Returns ErrLinkNotFound for unknown room ids; callers that want the
// "absent means disconnected" reading do that mapping themselves.
func (s *Simulator) State(roomID string) (LinkState, error) {
	l, err := s.get(roomID)
	if err != nil {
		return LinkState{}, err
	}
	return l.snapshot(), nil
}

// States returns snapshots for every known link.
func (s *Simulator) States() []LinkState {
	s.mu.RLock()
	links := make([]*link, 0, len(s.links))
	for _, l := range s.links {
		links = append(links, l)
	}
	s.mu.RUnlock()

	states := make([]LinkState, 0, len(links))
	for _, l := range links {
		states = append(states, l.snapshot())
	}
	return states
}

// Connect establishes the simulated link: the room transitions to
// connecting immediately, then to connected after the configured delay.
// There is no failure path — connect always succeeds. The caller blocks
// until the link is connected.
func (s *Simulator) Connect(roomID string) error {
	l, err := s.get(roomID)
	if err != nil {
		return err
	}

	l.transition.Lock()
	defer l.transition.Unlock()

	s.apply(l, StateConnecting, msgConnecting)
	time.Sleep(s.cfg.ConnectDelay())
	s.apply(l, StateConnected, msgConnected)

	s.logger.Debug("device link connected", "room_id", roomID)
	return nil
}

// Disconnect drops the simulated link after the configured delay.
// Always succeeds; disconnecting an already-disconnected link is a no-op
// that still reports success.
func (s *Simulator) Disconnect(roomID string) error {
	l, err := s.get(roomID)
	if err != nil {
		return err
	}

	l.transition.Lock()
	defer l.transition.Unlock()

	time.Sleep(s.cfg.DisconnectDelay())
	s.apply(l, StateDisconnected, msgDisconnected)

	s.logger.Debug("device link disconnected", "room_id", roomID)
	return nil
}

// SendCommand delivers a command over a connected link. The status
// message reflects "sending" during the delay window and "sent" after it.
//
// If the link is not connected the command is rejected with
// ErrNotConnected and nothing is mutated; surfacing that to the user is
// the caller's job.
func (s *Simulator) SendCommand(roomID, command string) error {
	l, err := s.get(roomID)
	if err != nil {
		return err
	}

	l.transition.Lock()
	defer l.transition.Unlock()

	if l.snapshot().State != StateConnected {
		s.logger.Warn("command rejected, link not connected", "room_id", roomID, "command", command)
		return fmt.Errorf("%w: room %s", ErrNotConnected, roomID)
	}

	s.apply(l, StateConnected, fmt.Sprintf("Sending: %s...", command))
	time.Sleep(s.cfg.CommandDelay())
	s.apply(l, StateConnected, fmt.Sprintf("Command '%s' sent.", command))

	if command == CommandOpenDoor {
		s.logger.Info("door opened", "room_id", roomID)
	} else {
		s.logger.Debug("command sent", "room_id", roomID, "command", command)
	}
	return nil
}

// get looks up the link for a room id.
func (s *Simulator) get(roomID string) (*link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.links[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: room %s", ErrLinkNotFound, roomID)
	}
	return l, nil
}

// apply records a state/message change and notifies observers.
// Must be called with the link's transition lock held.
func (s *Simulator) apply(l *link, state ConnState, message string) {
	l.mu.Lock()
	l.state = state
	l.message = message
	l.mu.Unlock()

	if s.notifier != nil {
		s.notifier.LinkChanged(l.snapshot())
	}
}

// snapshot returns a consistent copy of the link's observable state.
func (l *link) snapshot() LinkState {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return LinkState{
		RoomID:        l.roomID,
		State:         l.state,
		Connected:     l.state == StateConnected,
		StatusMessage: l.message,
	}
}
