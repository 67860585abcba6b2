package identity

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger defines the logging interface used by the Directory.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Directory stores registered users in memory and answers login and
// registration requests.
//
// This is a prototype identity store: login matches by email AND role,
// and the presented password is not verified (there is no real credential
// check in this scope). Registration still hashes the password with
// Argon2id so plaintext is never held at rest.
type Directory struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]*User // lowercased email -> user
	logger  Logger
	now     func() time.Time
}

// NewDirectory creates an empty identity directory.
func NewDirectory() *Directory {
	return &Directory{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
		logger:  noopLogger{},
		now:     time.Now,
	}
}

// SetLogger sets the logger for the directory.
func (d *Directory) SetLogger(logger Logger) {
	d.logger = logger
}

// Initialize replaces the user collection with the given seed accounts.
func (d *Directory) Initialize(seed []User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byID = make(map[string]*User, len(seed))
	d.byEmail = make(map[string]*User, len(seed))
	for i := range seed {
		u := seed[i]
		d.byID[u.ID] = &u
		d.byEmail[normalizeEmail(u.Email)] = &u
	}

	d.logger.Info("identity directory initialised", "count", len(seed))
}

// Login authenticates a user by email and role. The password parameter is
// accepted uninspected — prototype scope, no credential verification.
// A role mismatch is indistinguishable from an unknown email to the
// caller: both yield ErrInvalidCredentials.
func (d *Directory) Login(email, _ string, role Role) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byEmail[normalizeEmail(email)]
	if !ok || u.Role != role {
		d.logger.Warn("login rejected", "email", email, "role", role)
		return nil, ErrInvalidCredentials
	}

	cpy := *u
	return &cpy, nil
}

// Register creates a new guest account. The role is always guest: admin
// accounts only exist in the seed. Rejects duplicate emails regardless of
// the existing account's role.
func (d *Directory) Register(name, email, password string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	if !IsValidEmail(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	key := normalizeEmail(email)
	if _, exists := d.byEmail[key]; exists {
		d.logger.Warn("registration rejected, email taken", "email", email)
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	u := &User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		Role:         RoleGuest,
		PasswordHash: hash,
		CreatedAt:    d.now(),
	}
	d.byID[u.ID] = u
	d.byEmail[key] = u

	d.logger.Info("user registered", "user_id", u.ID, "role", u.Role)

	cpy := *u
	return &cpy, nil
}

// GetByID retrieves a user by ID.
// Returns ErrUserNotFound if the user does not exist.
func (d *Directory) GetByID(id string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cpy := *u
	return &cpy, nil
}

// Count returns the number of registered users.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byID)
}

// normalizeEmail lowercases an email for use as a lookup key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
