package booking

import (
	"math"
	"time"
)

// Booking is an immutable reservation record linking a guest to a room
// for a date range. RoomNumber is a denormalized snapshot taken at
// booking time: renumbering a room later never rewrites its bookings.
// TotalPrice is computed once and frozen, even if the room's nightly
// price changes afterwards.
type Booking struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	GuestID    string    `json:"guest_id"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// Nights returns the length of a stay in nights, rounding the date
// difference up to whole days. A same-day or inverted range yields zero
// or a negative value, which the ledger rejects.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}
