package room

// Status is the occupancy state of a room.
type Status string

const (
	// StatusAvailable means the room can be booked.
	StatusAvailable Status = "available"

	// StatusOccupied means the room has an active booking.
	StatusOccupied Status = "occupied"

	// StatusMaintenance means the room is out of service.
	StatusMaintenance Status = "maintenance"
)

// AllStatuses returns the set of valid room statuses.
func AllStatuses() []Status {
	return []Status{StatusAvailable, StatusOccupied, StatusMaintenance}
}

// IsValidStatus returns true if the status is one of the enumerated values.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	default:
		return false
	}
}

// ControlName identifies one of the three in-room amenity toggles.
type ControlName string

const (
	// ControlLight is the room lighting toggle.
	ControlLight ControlName = "light"

	// ControlAC is the air-conditioning toggle.
	ControlAC ControlName = "ac"

	// ControlPower is the main power toggle.
	ControlPower ControlName = "power"
)

// IsValidControl returns true if the name is a recognised control.
func IsValidControl(c ControlName) bool {
	switch c {
	case ControlLight, ControlAC, ControlPower:
		return true
	default:
		return false
	}
}

// Controls holds the three independent amenity booleans for a room.
// The registry does not couple them; whether light/AC may be toggled
// without main power is a caller-side policy.
type Controls struct {
	Light bool `json:"light"`
	AC    bool `json:"ac"`
	Power bool `json:"power"`
}

// Value returns the current value of the named control.
func (c Controls) Value(name ControlName) (bool, bool) {
	switch name {
	case ControlLight:
		return c.Light, true
	case ControlAC:
		return c.AC, true
	case ControlPower:
		return c.Power, true
	default:
		return false, false
	}
}

// Room represents one bookable unit with its status, pricing, and
// in-room control state.
type Room struct {
	ID            string   `json:"id"`
	Number        string   `json:"number"`
	Type          string   `json:"type"`
	Status        Status   `json:"status"`
	Amenities     []string `json:"amenities"`
	PricePerNight float64  `json:"price_per_night"`
	Controls      Controls `json:"controls"`
}

// DeepCopy creates an independent copy of the Room.
// The amenities slice is cloned so modifications to the copy do not
// affect the registry's canonical record.
func (r *Room) DeepCopy() *Room {
	if r == nil {
		return nil
	}

	cpy := *r
	if r.Amenities != nil {
		cpy.Amenities = make([]string, len(r.Amenities))
		copy(cpy.Amenities, r.Amenities)
	}
	return &cpy
}
