package identity

import "time"

// SeedUsers returns the fixed accounts the directory is initialised with
// at process start: one demo guest and one admin. The admin role cannot
// be obtained through registration.
func SeedUsers() []User {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []User{
		{
			ID:        "guest1",
			Name:      "John Doe",
			Email:     "guest@example.com",
			Role:      RoleGuest,
			CreatedAt: created,
		},
		{
			ID:        "admin1",
			Name:      "Admin User",
			Email:     "admin@example.com",
			Role:      RoleAdmin,
			CreatedAt: created,
		},
	}
}
