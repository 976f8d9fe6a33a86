package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// ListPostsQuery carries pagination and filtering for post listings.
type ListPostsQuery struct {
	Limit       int
	Offset      int
	TitleSearch string
}

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// FindByIDWithVotes retrieves a single post together with its vote count.
	FindByIDWithVotes(ctx context.Context, id int64) (*entity.PostWithVotes, error)

	// ListWithVotes retrieves posts with their vote counts, filtered by a
	// title substring and paginated.
	ListWithVotes(ctx context.Context, query ListPostsQuery) ([]*entity.PostWithVotes, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post entity in the storage.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by its ID. Returns ErrPostNotFound when no row
	// was deleted.
	Delete(ctx context.Context, id int64) error
}
