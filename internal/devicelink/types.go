package devicelink

// ConnState is the connection state of a room's simulated device link.
type ConnState string

const (
	// StateDisconnected means no link is established.
	StateDisconnected ConnState = "disconnected"

	// StateConnecting means a connect is in flight; it always completes.
	StateConnecting ConnState = "connecting"

	// StateConnected means commands can be sent to the in-room controller.
	StateConnected ConnState = "connected"
)

// Status messages shown to observers. The exact wording is part of the
// UI contract: clients render these strings verbatim.
const (
	msgDisconnected = "Disconnected"
	msgConnecting   = "Connecting..."
	msgConnected    = "Connected"
)

// CommandOpenDoor is the command string that unlocks a room's door.
const CommandOpenDoor = "OPEN_DOOR"

// LinkState is an observer's snapshot of one room's device link.
type LinkState struct {
	RoomID        string    `json:"room_id"`
	State         ConnState `json:"state"`
	Connected     bool      `json:"connected"`
	StatusMessage string    `json:"status_message"`
}
