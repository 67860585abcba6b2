package identity

import (
	"regexp"
	"time"
)

// emailPattern is a deliberately loose format check: one @ with something
// on both sides. Real deliverability validation is out of scope.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

// IsValidEmail checks if an email address meets format requirements.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Role represents an authorisation tier in the system.
type Role string

const (
	// RoleGuest is a hotel guest: can browse, book, and control the
	// rooms they have booked.
	RoleGuest Role = "guest"

	// RoleAdmin can view occupancy statistics and override room status.
	RoleAdmin Role = "admin"
)

// ValidRoles is the set of valid user roles.
var ValidRoles = []Role{RoleGuest, RoleAdmin}

// IsValidRole returns true if the role is recognised.
func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// User represents a registered account. The email together with the role
// forms the login key: a guest-labelled login against an admin account
// fails. Users are never deleted or mutated after creation.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"` // never serialised
	CreatedAt    time.Time `json:"created_at"`
}
