package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"
)

// authService implements the AuthUsecase interface (the auth guard).
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate resolves a bearer token into a live user record. No caching:
// every call re-verifies the token and re-queries the user, so a deleted
// account is rejected even while its tokens are still unexpired.
func (srv *authService) Authenticate(ctx context.Context, tokenString string) (*entity.User, error) {
	userID, err := srv.tokenService.Verify(tokenString)
	if err != nil {
		// The reason (signature, expiry, missing claim) stays in the logs;
		// callers see only the collapsed unauthorized error.
		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token verification failed")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Token outlived its account. Collapsed to the same signal as a
			// bad token so deleted accounts cannot be enumerated.
			srv.log(ctx).Debug("Token references missing user", slog.Int64("userID", userID))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for token")
	}

	return user, nil
}
