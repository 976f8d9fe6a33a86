package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth guard tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	storedUser := &entity.User{ID: 42, Email: "test@example.com"}

	fixtures.tokenService.EXPECT().Verify("valid_token").Return(int64(42), nil)
	fixtures.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(storedUser, nil)

	user, err := fixtures.service.Authenticate(ctx, "valid_token")

	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
}

// All authentication failures must collapse to the same error so the caller
// cannot distinguish a bad signature from an expired token, a claimless token
// or a deleted account.
func TestAuthService_Authenticate_FailuresCollapse(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid token", func(t *testing.T) {
		fixtures := createTestAuthService(t)
		fixtures.tokenService.EXPECT().Verify("bad_token").Return(int64(0), service.ErrInvalidToken)

		user, err := fixtures.service.Authenticate(ctx, "bad_token")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("missing claim", func(t *testing.T) {
		fixtures := createTestAuthService(t)
		fixtures.tokenService.EXPECT().Verify("claimless_token").Return(int64(0), service.ErrMissingClaim)

		user, err := fixtures.service.Authenticate(ctx, "claimless_token")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		fixtures := createTestAuthService(t)
		fixtures.tokenService.EXPECT().Verify("orphan_token").Return(int64(42), nil)
		fixtures.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

		user, err := fixtures.service.Authenticate(ctx, "orphan_token")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
