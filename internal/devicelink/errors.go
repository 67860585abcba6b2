package devicelink

import "errors"

// Domain errors for the devicelink package.
var (
	// ErrLinkNotFound is returned when no link exists for a room id.
	ErrLinkNotFound = errors.New("devicelink: not found")

	// ErrNotConnected is returned by SendCommand when the link is not in
	// the connected state. The call mutates nothing.
	ErrNotConnected = errors.New("devicelink: not connected")
)
