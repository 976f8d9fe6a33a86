package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "pulse/internal/delivery/context"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/usecase"
)

// AuthMiddleware guards routes that require an authenticated user.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase, logger: logger}
}

// Authenticate validates the bearer token and loads the acting user onto the
// request context. Every rejection returns the same unauthorized error, so a
// caller cannot tell a missing header from a bad signature or a deleted
// account. The concrete reason goes to the debug log only.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Debug("Rejected request without authorization header", slog.String("path", c.Request().URL.Path))

			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			m.logger.Debug("Rejected non-bearer authorization header", slog.String("path", c.Request().URL.Path))

			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is not a bearer token")
		}

		user, err := m.authUsecase.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		// Expose the acting user to handlers.
		c.Set("userID", user.ID)
		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}
