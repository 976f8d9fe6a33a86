package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fixtures.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(1), output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.Password)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fixtures.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateKey)

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	output, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	storedUser := &entity.User{
		ID:       1,
		Email:    input.Email,
		Password: "hashed_password",
	}

	fixtures.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)
	fixtures.hasher.EXPECT().Check(input.Password, storedUser.Password).Return(true)
	fixtures.tokenService.EXPECT().Issue(storedUser.ID).Return("signed_token", nil)

	output, err := fixtures.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
}

// An unknown email and a wrong password must fail with the same error, so the
// login endpoint cannot be used to probe which addresses are registered.
func TestUserService_Login_UnknownEmailAndWrongPasswordCollapse(t *testing.T) {
	ctx := context.Background()

	unknownFixtures := createTestUserService(t)
	unknownFixtures.userRepo.EXPECT().
		FindByEmail(ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := unknownFixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "unknown@example.com",
		Password: "Password123!",
	})

	wrongFixtures := createTestUserService(t)
	wrongFixtures.userRepo.EXPECT().
		FindByEmail(ctx, "known@example.com").
		Return(&entity.User{ID: 1, Email: "known@example.com", Password: "hashed_password"}, nil)
	wrongFixtures.hasher.EXPECT().Check("WrongPassword!", "hashed_password").Return(false)

	_, wrongErr := wrongFixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "known@example.com",
		Password: "WrongPassword!",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetUser_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{ID: 7, Email: "test@example.com"}

	fixtures.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(storedUser, nil)

	user, err := fixtures.service.GetUser(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()

	fixtures.userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	user, err := fixtures.service.GetUser(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
