// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pulse/config"
	"pulse/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
}

// accessClaims is the payload carried by access tokens. The user identifier
// lives in a private "user_id" claim alongside the registered claims.
type accessClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret is a startup-fatal condition, never a per-request error.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    cfg.AccessTokenTTL(),
	}, nil
}

// Issue creates a signed access token for the given user.
func (s *jwtService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the token's signature and expiry and returns the encoded user id.
// All parse and validation failures map to ErrInvalidToken; a structurally
// valid token without a user identifier maps to ErrMissingClaim. The caller at
// the HTTP boundary must not expose which of the two occurred.
func (s *jwtService) Verify(tokenString string) (int64, error) {
	claims := &accessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, service.ErrInvalidToken
	}

	if claims.UserID == 0 {
		return 0, service.ErrMissingClaim
	}

	return claims.UserID, nil
}

// TTL returns the configured access token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
