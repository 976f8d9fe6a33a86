package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	"pulse/internal/usecase"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service   usecase.PostUsecase
	txManager *mockRepo.MockTransactionManager
	postRepo  *mockRepo.MockPostRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPostService(PostServiceParams{
		TxManager: txManager,
		PostRepo:  postRepo,
		Logger:    logger,
	})

	return postServiceFixtures{
		service:   service,
		txManager: txManager,
		postRepo:  postRepo,
	}
}

// expectTransaction routes Execute through a factory backed by the given
// transactional post repository and propagates the callback's error.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txPostRepo *mockRepo.MockPostRepository) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().PostRepo().Return(txPostRepo)

			return fn(factory)
		})
}

func TestPostService_CreatePost_Success(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		Title:     "First post",
		Content:   "Hello",
		Published: true,
	}

	fixtures.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			post.ID = 10
		}).
		Return(nil)

	post, err := fixtures.service.CreatePost(ctx, 1, input)

	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, int64(10), post.ID)
	assert.Equal(t, int64(1), post.OwnerID)
	assert.Equal(t, input.Title, post.Title)
	assert.True(t, post.Published)
}

func TestPostService_ListPosts_AppliesDefaultLimit(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()

	fixtures.postRepo.EXPECT().
		ListWithVotes(ctx, repository.ListPostsQuery{Limit: 10, Offset: 0, TitleSearch: "go"}).
		Return([]*entity.PostWithVotes{}, nil)

	posts, err := fixtures.service.ListPosts(ctx, &usecase.ListPostsInput{Search: "go"})

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostService_GetPost_Success(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()
	stored := &entity.PostWithVotes{
		Post:  &entity.Post{ID: 5, OwnerID: 1, Title: "First post"},
		Votes: 3,
	}

	fixtures.postRepo.EXPECT().FindByIDWithVotes(ctx, int64(5)).Return(stored, nil)

	post, err := fixtures.service.GetPost(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, stored, post)
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()

	fixtures.postRepo.EXPECT().FindByIDWithVotes(ctx, int64(404)).Return(nil, repository.ErrPostNotFound)

	post, err := fixtures.service.GetPost(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_UpdatePost_Success(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()
	stored := &entity.Post{ID: 5, OwnerID: 1, Title: "Old", Content: "Old body", Published: false}

	txPostRepo := mockRepo.NewMockPostRepository(t)
	expectTransaction(t, fixtures.txManager, txPostRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	txPostRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := fixtures.service.UpdatePost(ctx, 1, 5, &usecase.UpdatePostInput{
		Title:     "New",
		Content:   "New body",
		Published: true,
	})

	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "New", post.Title)
	assert.Equal(t, "New body", post.Content)
	assert.True(t, post.Published)
}

func TestPostService_UpdatePost_NotOwner(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()
	stored := &entity.Post{ID: 5, OwnerID: 1, Title: "Old"}

	txPostRepo := mockRepo.NewMockPostRepository(t)
	expectTransaction(t, fixtures.txManager, txPostRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)

	post, err := fixtures.service.UpdatePost(ctx, 2, 5, &usecase.UpdatePostInput{Title: "New"})

	require.Error(t, err)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrPostOwnershipViolation)
}

// A missing post must surface as not-found even when the caller would also
// fail the ownership check. Existence is evaluated first.
func TestPostService_UpdatePost_NotFoundBeforeOwnership(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()

	txPostRepo := mockRepo.NewMockPostRepository(t)
	expectTransaction(t, fixtures.txManager, txPostRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrPostNotFound)

	post, err := fixtures.service.UpdatePost(ctx, 2, 404, &usecase.UpdatePostInput{Title: "New"})

	require.Error(t, err)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrPostOwnershipViolation)
}

func TestPostService_DeletePost_Success(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()
	stored := &entity.Post{ID: 5, OwnerID: 1}

	txPostRepo := mockRepo.NewMockPostRepository(t)
	expectTransaction(t, fixtures.txManager, txPostRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	txPostRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

	err := fixtures.service.DeletePost(ctx, 1, 5)

	require.NoError(t, err)
}

func TestPostService_DeletePost_NotOwner(t *testing.T) {
	fixtures := createTestPostService(t)

	ctx := context.Background()
	stored := &entity.Post{ID: 5, OwnerID: 1}

	txPostRepo := mockRepo.NewMockPostRepository(t)
	expectTransaction(t, fixtures.txManager, txPostRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)

	err := fixtures.service.DeletePost(ctx, 2, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostOwnershipViolation)
}
