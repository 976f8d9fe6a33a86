package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	mockUC "pulse/internal/mocks/usecase"
)

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(authUC, logger), authUC
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	m, authUC := createTestAuthMiddleware(t)

	c := newAuthTestContext("Bearer valid_token")
	user := &entity.User{ID: 42, Email: "test@example.com"}
	authUC.EXPECT().Authenticate(c.Request().Context(), "valid_token").Return(user, nil)

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, nextCalled)
	assert.Equal(t, int64(42), c.Get("userID"))
	assert.Equal(t, user, deliverycontext.GetCurrentUser(c))
}

// A missing header, a non-bearer header and a rejected token must all yield
// the same unauthorized error.
func TestAuthMiddleware_Authenticate_RejectionsCollapse(t *testing.T) {
	next := func(c echo.Context) error {
		t.Fatal("next handler must not run for a rejected request")

		return nil
	}

	t.Run("missing header", func(t *testing.T) {
		m, _ := createTestAuthMiddleware(t)

		err := m.Authenticate(next)(newAuthTestContext(""))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m, _ := createTestAuthMiddleware(t)

		err := m.Authenticate(next)(newAuthTestContext("Basic dXNlcjpwdw=="))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("rejected token", func(t *testing.T) {
		m, authUC := createTestAuthMiddleware(t)

		c := newAuthTestContext("Bearer expired_token")
		authUC.EXPECT().
			Authenticate(c.Request().Context(), "expired_token").
			Return(nil, errors.Wrap(domainerrors.ErrUnauthorized, "token verification failed"))

		err := m.Authenticate(next)(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
