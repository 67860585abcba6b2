package identity

import "errors"

// Domain errors for the identity package.
var (
	// ErrUserNotFound is returned when a user ID does not exist.
	ErrUserNotFound = errors.New("identity: user not found")

	// ErrInvalidCredentials is returned when no account matches the
	// email/role pair presented at login.
	ErrInvalidCredentials = errors.New("identity: invalid credentials")

	// ErrEmailTaken is returned when registering an email that already
	// exists, regardless of the existing account's role.
	ErrEmailTaken = errors.New("identity: email already registered")

	// ErrInvalidEmail is returned when an email fails the format check.
	ErrInvalidEmail = errors.New("identity: invalid email")

	// ErrInvalidName is returned when a display name is empty.
	ErrInvalidName = errors.New("identity: invalid name")

	// ErrTokenInvalid is returned when an access token fails validation.
	ErrTokenInvalid = errors.New("identity: invalid token")
)
