package room

// SeedRooms returns the fixed room inventory the registry is initialised
// with at process start. The prototype has no external room configuration;
// this list is the only persisted state layout.
func SeedRooms() []Room {
	return []Room{
		{
			ID:            "room101",
			Number:        "101",
			Type:          "Standard Single",
			Status:        StatusAvailable,
			Amenities:     []string{"Wifi", "TV", "Desk"},
			PricePerNight: 80,
			Controls:      Controls{Light: false, AC: false, Power: true},
		},
		{
			ID:            "room102",
			Number:        "102",
			Type:          "Standard Double",
			Status:        StatusAvailable,
			Amenities:     []string{"Wifi", "TV", "Mini-bar"},
			PricePerNight: 120,
			Controls:      Controls{Light: false, AC: false, Power: true},
		},
		{
			ID:            "room103",
			Number:        "103",
			Type:          "Suite",
			Status:        StatusOccupied,
			Amenities:     []string{"Wifi", "TV", "Mini-bar", "Jacuzzi"},
			PricePerNight: 200,
			Controls:      Controls{Light: true, AC: true, Power: true},
		},
		{
			ID:            "room201",
			Number:        "201",
			Type:          "Deluxe King",
			Status:        StatusMaintenance,
			Amenities:     []string{"Wifi", "Large TV", "Balcony", "Coffee Maker"},
			PricePerNight: 180,
			Controls:      Controls{Light: false, AC: false, Power: false},
		},
		{
			ID:            "room202",
			Number:        "202",
			Type:          "Family Room",
			Status:        StatusAvailable,
			Amenities:     []string{"Wifi", "TV", "Bunk Beds", "Kitchenette"},
			PricePerNight: 220,
			Controls:      Controls{Light: false, AC: false, Power: true},
		},
	}
}
