package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Title     string
	Content   string
	Published bool
}

// UpdatePostInput defines the full replacement data for a post update.
type UpdatePostInput struct {
	Title     string
	Content   string
	Published bool
}

// ListPostsInput carries pagination and title filtering for post listings.
type ListPostsInput struct {
	Limit  int
	Offset int
	Search string
}

// PostUsecase defines the interface for post-related business operations.
// Mutating operations take the acting user's id and enforce ownership after
// existence: a missing post is reported before any ownership comparison.
type PostUsecase interface {
	CreatePost(ctx context.Context, actorID int64, input *CreatePostInput) (*entity.Post, error)
	ListPosts(ctx context.Context, input *ListPostsInput) ([]*entity.PostWithVotes, error)
	GetPost(ctx context.Context, id int64) (*entity.PostWithVotes, error)
	UpdatePost(ctx context.Context, actorID int64, id int64, input *UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, actorID int64, id int64) error
}
