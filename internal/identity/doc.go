// Package identity provides the Identity Directory for AccessHub Core.
//
// The directory stores registered users in memory and answers login and
// registration requests. The login key is the email AND role pair; the
// password is accepted uninspected in this prototype (registration still
// hashes it with Argon2id so nothing is stored in plaintext).
//
// Access tokens are JWTs carrying the user's role; the HTTP layer uses
// them for its role checks.
package identity
