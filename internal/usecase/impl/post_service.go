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
	"pulse/internal/usecase"
)

const defaultListLimit = 10

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost persists a new post owned by the acting user.
func (srv *postService) CreatePost(ctx context.Context, actorID int64, input *usecase.CreatePostInput) (*entity.Post, error) {
	newPost := &entity.Post{
		OwnerID:   actorID,
		Title:     input.Title,
		Content:   input.Content,
		Published: input.Published,
	}

	// Single insert - use the direct repository instance.
	if err := srv.postRepo.Create(ctx, newPost); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Int64("actorID", actorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.Int64("postID", newPost.ID), slog.Int64("actorID", actorID))

	return newPost, nil
}

// ListPosts retrieves posts with their vote counts.
func (srv *postService) ListPosts(ctx context.Context, input *usecase.ListPostsInput) ([]*entity.PostWithVotes, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	posts, err := srv.postRepo.ListWithVotes(ctx, repository.ListPostsQuery{
		Limit:       limit,
		Offset:      offset,
		TitleSearch: input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// GetPost retrieves a single post with its vote count.
func (srv *postService) GetPost(ctx context.Context, id int64) (*entity.PostWithVotes, error) {
	post, err := srv.postRepo.FindByIDWithVotes(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// UpdatePost replaces a post's content, owner-only. The existence and
// ownership checks run in the same transaction as the update so the gate and
// the mutation observe one consistent row.
func (srv *postService) UpdatePost(ctx context.Context, actorID int64, id int64, input *usecase.UpdatePostInput) (*entity.Post, error) {
	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := srv.loadOwnedPost(ctx, postRepo, actorID, id)
		if err != nil {
			return err
		}

		post.Title = input.Title
		post.Content = input.Content
		post.Published = input.Published

		if err := postRepo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}

		updated = post

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update post", slog.Int64("postID", id), slog.Int64("actorID", actorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Post updated", slog.Int64("postID", id), slog.Int64("actorID", actorID))

	return updated, nil
}

// DeletePost removes a post, owner-only.
func (srv *postService) DeletePost(ctx context.Context, actorID int64, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		if _, err := srv.loadOwnedPost(ctx, postRepo, actorID, id); err != nil {
			return err
		}

		if err := postRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete post")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete post", slog.Int64("postID", id), slog.Int64("actorID", actorID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Post deleted", slog.Int64("postID", id), slog.Int64("actorID", actorID))

	return nil
}

// loadOwnedPost fetches a post and checks ownership. Existence is evaluated
// first: a missing post is not-found, never forbidden.
func (srv *postService) loadOwnedPost(ctx context.Context, postRepo repository.PostRepository, actorID, id int64) (*entity.Post, error) {
	post, err := postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	if !post.OwnedBy(actorID) {
		return nil, errors.Wrap(domainerrors.ErrPostOwnershipViolation, "actor is not the post owner")
	}

	return post, nil
}
