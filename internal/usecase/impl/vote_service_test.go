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

// voteServiceFixtures holds all test dependencies for vote service tests.
type voteServiceFixtures struct {
	service   usecase.VoteUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestVoteService(t *testing.T) voteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewVoteService(VoteServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return voteServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

// expectVoteTransaction routes one Execute call through a factory backed by
// the given transactional repositories and propagates the callback's error.
func expectVoteTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txPostRepo *mockRepo.MockPostRepository, txVoteRepo *mockRepo.MockVoteRepository) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().PostRepo().Return(txPostRepo)
			factory.EXPECT().VoteRepo().Return(txVoteRepo)

			return fn(factory)
		})
}

func TestVoteService_CastVote_Add_Success(t *testing.T) {
	fixtures := createTestVoteService(t)

	ctx := context.Background()

	txPostRepo := mockRepo.NewMockPostRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)
	expectVoteTransaction(t, fixtures.txManager, txPostRepo, txVoteRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Post{ID: 5, OwnerID: 1}, nil)
	txVoteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vote")).Return(nil)

	vote, err := fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{
		PostID: 5,
		Dir:    entity.VoteDirectionAdd,
	})

	require.NoError(t, err)
	require.NotNil(t, vote)
	assert.Equal(t, int64(5), vote.PostID)
	assert.Equal(t, int64(2), vote.OwnerID)
}

// Liking a post twice is a conflict, never a silent no-op.
func TestVoteService_CastVote_Add_Duplicate(t *testing.T) {
	fixtures := createTestVoteService(t)

	ctx := context.Background()

	txPostRepo := mockRepo.NewMockPostRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)
	expectVoteTransaction(t, fixtures.txManager, txPostRepo, txVoteRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Post{ID: 5, OwnerID: 1}, nil)
	txVoteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vote")).Return(repository.ErrDuplicateKey)

	vote, err := fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{
		PostID: 5,
		Dir:    entity.VoteDirectionAdd,
	})

	require.Error(t, err)
	assert.Nil(t, vote)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVoted)
}

func TestVoteService_CastVote_Remove_Success(t *testing.T) {
	fixtures := createTestVoteService(t)

	ctx := context.Background()

	txPostRepo := mockRepo.NewMockPostRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)
	expectVoteTransaction(t, fixtures.txManager, txPostRepo, txVoteRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Post{ID: 5, OwnerID: 1}, nil)
	txVoteRepo.EXPECT().Delete(ctx, int64(5), int64(2)).Return(nil)

	vote, err := fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{
		PostID: 5,
		Dir:    entity.VoteDirectionRemove,
	})

	require.NoError(t, err)
	assert.Nil(t, vote)
}

// Removing a vote that was never cast is not-found.
func TestVoteService_CastVote_Remove_Absent(t *testing.T) {
	fixtures := createTestVoteService(t)

	ctx := context.Background()

	txPostRepo := mockRepo.NewMockPostRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)
	expectVoteTransaction(t, fixtures.txManager, txPostRepo, txVoteRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Post{ID: 5, OwnerID: 1}, nil)
	txVoteRepo.EXPECT().Delete(ctx, int64(5), int64(2)).Return(repository.ErrVoteNotFound)

	vote, err := fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{
		PostID: 5,
		Dir:    entity.VoteDirectionRemove,
	})

	require.Error(t, err)
	assert.Nil(t, vote)
	assert.ErrorIs(t, err, domainerrors.ErrVoteNotFound)
}

func TestVoteService_CastVote_InvalidDirection(t *testing.T) {
	fixtures := createTestVoteService(t)

	ctx := context.Background()

	// No transaction may start for a direction outside {0, 1}.
	vote, err := fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{
		PostID: 5,
		Dir:    2,
	})

	require.Error(t, err)
	assert.Nil(t, vote)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidVoteDirection)
}

func TestVoteService_CastVote_PostMissing(t *testing.T) {
	fixtures := createTestVoteService(t)

	ctx := context.Background()

	txPostRepo := mockRepo.NewMockPostRepository(t)
	txVoteRepo := mockRepo.NewMockVoteRepository(t)
	expectVoteTransaction(t, fixtures.txManager, txPostRepo, txVoteRepo)

	txPostRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrPostNotFound)

	vote, err := fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{
		PostID: 404,
		Dir:    entity.VoteDirectionAdd,
	})

	require.Error(t, err)
	assert.Nil(t, vote)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

// Full transition sequence for one (post, user) pair: add succeeds, remove
// succeeds, a second remove finds nothing left.
func TestVoteService_CastVote_AddRemoveRemoveSequence(t *testing.T) {
	fixtures := createTestVoteService(t)

	ctx := context.Background()
	post := &entity.Post{ID: 5, OwnerID: 1}

	addPostRepo := mockRepo.NewMockPostRepository(t)
	addVoteRepo := mockRepo.NewMockVoteRepository(t)
	addPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(post, nil)
	addVoteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Vote")).Return(nil)
	expectVoteTransaction(t, fixtures.txManager, addPostRepo, addVoteRepo).Once()

	removePostRepo := mockRepo.NewMockPostRepository(t)
	removeVoteRepo := mockRepo.NewMockVoteRepository(t)
	removePostRepo.EXPECT().FindByID(ctx, int64(5)).Return(post, nil)
	removeVoteRepo.EXPECT().Delete(ctx, int64(5), int64(2)).Return(nil)
	expectVoteTransaction(t, fixtures.txManager, removePostRepo, removeVoteRepo).Once()

	absentPostRepo := mockRepo.NewMockPostRepository(t)
	absentVoteRepo := mockRepo.NewMockVoteRepository(t)
	absentPostRepo.EXPECT().FindByID(ctx, int64(5)).Return(post, nil)
	absentVoteRepo.EXPECT().Delete(ctx, int64(5), int64(2)).Return(repository.ErrVoteNotFound)
	expectVoteTransaction(t, fixtures.txManager, absentPostRepo, absentVoteRepo).Once()

	vote, err := fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{PostID: 5, Dir: entity.VoteDirectionAdd})
	require.NoError(t, err)
	require.NotNil(t, vote)

	vote, err = fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{PostID: 5, Dir: entity.VoteDirectionRemove})
	require.NoError(t, err)
	assert.Nil(t, vote)

	_, err = fixtures.service.CastVote(ctx, 2, &usecase.CastVoteInput{PostID: 5, Dir: entity.VoteDirectionRemove})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVoteNotFound)
}
