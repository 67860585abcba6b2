package booking

import "errors"

// Domain errors for the booking package.
var (
	// ErrBookingNotFound is returned when a booking ID does not exist.
	ErrBookingNotFound = errors.New("booking: not found")

	// ErrRoomUnavailable is returned when the requested room does not
	// exist or is not currently available.
	ErrRoomUnavailable = errors.New("booking: room unavailable")

	// ErrInvalidStay is returned when the check-out date is not strictly
	// after the check-in date.
	ErrInvalidStay = errors.New("booking: invalid stay length")
)
