package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// AuthUsecase is the auth guard: it resolves a bearer token into a live user
// record. Every identity-dependent operation runs behind it.
type AuthUsecase interface {
	// Authenticate verifies the token and loads the user it identifies.
	// Every failure (bad signature, expiry, missing claim, deleted user)
	// surfaces as the same collapsed unauthorized error; the concrete reason
	// is available to logs only.
	Authenticate(ctx context.Context, tokenString string) (*entity.User, error)
}
