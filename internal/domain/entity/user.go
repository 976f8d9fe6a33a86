// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. Passwords are stored only as a
// bcrypt hash; the plaintext never leaves the registration/login request.
type User struct {
	ID        int64     // Database-generated identifier (bigserial).
	Email     string    // Unique login identifier.
	Password  string    // Bcrypt hash of the user's password. Never serialized to clients.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
