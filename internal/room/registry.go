package room

import (
	"fmt"
	"sync"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
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

// Notifier receives a callback after every room mutation. It feeds the
// WebSocket hub so connected UIs see status and control changes live.
// Implementations must not call back into the Registry.
type Notifier interface {
	RoomChanged(r Room)
}

// Registry holds the canonical list of rooms and their status/control
// state. Rooms live purely in memory; Initialize() with the seed list is
// the only supported way to reset state.
//
// All public methods are thread-safe. Reads return deep copies so callers
// can never mutate the canonical records directly.
type Registry struct {
	mu       sync.RWMutex
	rooms    map[string]*Room
	order    []string // insertion order for stable listings
	logger   Logger
	notifier Notifier
}

// NewRegistry creates an empty room registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]*Room),
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// SetNotifier sets the change notifier. Pass nil to disable notifications.
func (r *Registry) SetNotifier(n Notifier) {
	r.notifier = n
}

// Initialize replaces the entire room collection with the given seed.
// Existing rooms are discarded. Calling Initialize again is the only
// supported way to reset registry state.
func (r *Registry) Initialize(seed []Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms = make(map[string]*Room, len(seed))
	r.order = make([]string, 0, len(seed))
	for i := range seed {
		rm := seed[i]
		r.rooms[rm.ID] = rm.DeepCopy()
		r.order = append(r.order, rm.ID)
	}

	r.logger.Info("room registry initialised", "count", len(seed))
}

// GetByID retrieves a room by ID.
// Returns ErrRoomNotFound if the room does not exist.
func (r *Registry) GetByID(id string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rm, ok := r.rooms[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return rm.DeepCopy(), nil
}

// List returns all rooms in seed order.
func (r *Registry) List() []Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]Room, 0, len(r.order))
	for _, id := range r.order {
		rooms = append(rooms, *r.rooms[id].DeepCopy())
	}
	return rooms
}

// ListByStatus returns all rooms with the given status, in seed order.
func (r *Registry) ListByStatus(status Status) []Room {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rooms []Room
	for _, id := range r.order {
		if r.rooms[id].Status == status {
			rooms = append(rooms, *r.rooms[id].DeepCopy())
		}
	}
	return rooms
}

// RoomIDs returns the ids of all known rooms in seed order.
func (r *Registry) RoomIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Count returns the number of rooms in the registry.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// UpdateStatus sets a room's status unconditionally. There is no
// transition-legality check: the admin override may move a room between
// any two statuses. Returns ErrRoomNotFound for unknown ids and
// ErrInvalidStatus for values outside the enumeration.
func (r *Registry) UpdateStatus(id string, status Status) error {
	if !IsValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	r.mu.Lock()
	rm, ok := r.rooms[id]
	if !ok {
		r.mu.Unlock()
		return ErrRoomNotFound
	}
	rm.Status = status
	changed := *rm.DeepCopy()
	r.mu.Unlock()

	r.logger.Debug("room status updated", "room_id", id, "status", status)
	r.notify(changed)
	return nil
}

// CompareAndSetStatus atomically sets a room's status to `to` only if its
// current status is `from`. This is the check-then-act primitive the
// booking ledger uses so that two concurrent bookings of one room cannot
// both succeed.
//
// Returns ErrRoomNotFound for unknown ids and ErrStatusConflict when the
// current status does not match `from`. On conflict nothing is mutated.
func (r *Registry) CompareAndSetStatus(id string, from, to Status) error {
	if !IsValidStatus(to) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}

	r.mu.Lock()
	rm, ok := r.rooms[id]
	if !ok {
		r.mu.Unlock()
		return ErrRoomNotFound
	}
	if rm.Status != from {
		current := rm.Status
		r.mu.Unlock()
		return fmt.Errorf("%w: room %s is %s, expected %s", ErrStatusConflict, id, current, from)
	}
	rm.Status = to
	changed := *rm.DeepCopy()
	r.mu.Unlock()

	r.logger.Debug("room status swapped", "room_id", id, "from", from, "to", to)
	r.notify(changed)
	return nil
}

// ToggleControl flips the named control boolean. The toggle is
// unconditional: the registry enforces no coupling between controls or
// with the device link state. It never changes the room's status.
//
// Returns the updated room snapshot so callers can report the new value.
func (r *Registry) ToggleControl(id string, name ControlName) (Room, error) {
	if !IsValidControl(name) {
		return Room{}, fmt.Errorf("%w: %q", ErrInvalidControl, name)
	}

	r.mu.Lock()
	rm, ok := r.rooms[id]
	if !ok {
		r.mu.Unlock()
		return Room{}, ErrRoomNotFound
	}

	switch name {
	case ControlLight:
		rm.Controls.Light = !rm.Controls.Light
	case ControlAC:
		rm.Controls.AC = !rm.Controls.AC
	case ControlPower:
		rm.Controls.Power = !rm.Controls.Power
	}
	changed := *rm.DeepCopy()
	r.mu.Unlock()

	value, _ := changed.Controls.Value(name)
	r.logger.Debug("room control toggled", "room_id", id, "control", name, "value", value)
	r.notify(changed)
	return changed, nil
}

// StatusCounts returns the number of rooms per status. Every enumerated
// status is present in the result, so the admin dashboard can render
// zero-count bars.
func (r *Registry) StatusCounts() map[Status]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[Status]int, len(AllStatuses()))
	for _, s := range AllStatuses() {
		counts[s] = 0
	}
	for _, rm := range r.rooms {
		counts[rm.Status]++
	}
	return counts
}

// notify invokes the notifier outside the registry lock.
func (r *Registry) notify(changed Room) {
	if r.notifier != nil {
		r.notifier.RoomChanged(changed)
	}
}
