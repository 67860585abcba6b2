package room

import "errors"

// Domain errors for the room package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, room.ErrRoomNotFound) {
//	    // handle not found case
//	}
var (
	// ErrRoomNotFound is returned when a room ID does not exist.
	ErrRoomNotFound = errors.New("room: not found")

	// ErrInvalidStatus is returned when a status value is not recognised.
	ErrInvalidStatus = errors.New("room: invalid status")

	// ErrInvalidControl is returned when a control name is not recognised.
	ErrInvalidControl = errors.New("room: invalid control")

	// ErrStatusConflict is returned by CompareAndSetStatus when the room's
	// current status does not match the expected value.
	ErrStatusConflict = errors.New("room: status conflict")
)
