package booking

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/accesshub-core/internal/room"
)

// Logger defines the logging interface used by the Ledger.
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

// RoomDirectory is the registry handle injected into the Ledger. The
// ledger never reaches for a global registry: the dependency is explicit
// so the availability check and the occupied write can be guarded as one
// critical section owned by AddBooking.
type RoomDirectory interface {
	GetByID(id string) (*room.Room, error)
	CompareAndSetStatus(id string, from, to room.Status) error
}

// Ledger records guest reservations. Bookings are append-only and
// immutable; the ledger never deletes or rewrites a record.
//
// AddBooking is serialised by the ledger mutex, and the room status flip
// uses the registry's compare-and-swap, so two concurrent bookings of the
// same room can never both succeed.
type Ledger struct {
	mu       sync.Mutex
	bookings []Booking
	byID     map[string]int // booking id -> index into bookings
	rooms    RoomDirectory
	logger   Logger
	now      func() time.Time
}

// NewLedger creates an empty booking ledger backed by the given room
// directory.
func NewLedger(rooms RoomDirectory) *Ledger {
	return &Ledger{
		byID:   make(map[string]int),
		rooms:  rooms,
		logger: noopLogger{},
		now:    time.Now,
	}
}

// SetLogger sets the logger for the ledger.
func (l *Ledger) SetLogger(logger Logger) {
	l.logger = logger
}

// AddBooking reserves a room for a guest.
//
// Preconditions, checked in order:
//  1. the room exists and its status is available
//  2. the stay is strictly positive: nights = ceil(checkOut−checkIn) > 0
//
// On success the total price (nights × nightly price) is frozen into an
// immutable Booking, the record is appended to the ledger, and the room
// is flipped to occupied. Booking creation and the status flip are
// atomic: a booking never exists for a room that is not occupied.
func (l *Ledger) AddBooking(guestID, guestName, roomID string, checkIn, checkOut time.Time) (*Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rm, err := l.rooms.GetByID(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomUnavailable, roomID)
	}
	if rm.Status != room.StatusAvailable {
		l.logger.Warn("booking rejected, room not available",
			"room_id", roomID, "status", rm.Status, "guest_id", guestID)
		return nil, fmt.Errorf("%w: room %s is %s", ErrRoomUnavailable, roomID, rm.Status)
	}

	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, fmt.Errorf("%w: %d nights", ErrInvalidStay, nights)
	}

	// Claim the room before recording the booking. The swap fails if a
	// concurrent caller won the race between our availability check and
	// here, in which case nothing has been mutated on our behalf.
	if err := l.rooms.CompareAndSetStatus(roomID, room.StatusAvailable, room.StatusOccupied); err != nil {
		if errors.Is(err, room.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: room %s was claimed concurrently", ErrRoomUnavailable, roomID)
		}
		return nil, fmt.Errorf("%w: %s", ErrRoomUnavailable, roomID)
	}

	b := Booking{
		ID:         uuid.NewString(),
		RoomID:     rm.ID,
		RoomNumber: rm.Number,
		GuestID:    guestID,
		GuestName:  guestName,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: float64(nights) * rm.PricePerNight,
		CreatedAt:  l.now(),
	}

	l.byID[b.ID] = len(l.bookings)
	l.bookings = append(l.bookings, b)

	l.logger.Info("booking created",
		"booking_id", b.ID,
		"room_id", b.RoomID,
		"guest_id", b.GuestID,
		"nights", nights,
		"total_price", b.TotalPrice,
	)

	cpy := b
	return &cpy, nil
}

// BookingsForGuest returns the guest's bookings in insertion order.
// The order is not guaranteed sorted by date; callers sort if needed.
func (l *Ledger) BookingsForGuest(guestID string) []Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Booking
	for _, b := range l.bookings {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out
}

// GetByID retrieves a booking by ID.
// Returns ErrBookingNotFound if the booking does not exist.
func (l *Ledger) GetByID(id string) (*Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	cpy := l.bookings[idx]
	return &cpy, nil
}

// List returns every booking in insertion order. Used by the admin view.
func (l *Ledger) List() []Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

// Count returns the number of bookings in the ledger.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}
