package service

import (
	"errors"
	"time"
)

// Token verification failure kinds. These stay internal: the HTTP boundary
// collapses every one of them into the same generic unauthorized response so
// callers cannot distinguish a bad signature from an expired token or an
// unknown account.
var (
	// ErrInvalidToken covers malformed tokens, bad signatures, wrong signing
	// methods and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingClaim is returned when a structurally valid token carries no
	// user identifier claim.
	ErrMissingClaim = errors.New("token is missing the user identifier claim")
)

// TokenService defines the interface for issuing and verifying signed,
// time-limited bearer tokens.
type TokenService interface {
	// Issue creates a signed token encoding the user's identity, valid for
	// the configured TTL.
	Issue(userID int64) (string, error)

	// Verify checks a token's signature and expiry and returns the encoded
	// user id. A token whose expiry is exactly now is already invalid.
	Verify(tokenString string) (int64, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
