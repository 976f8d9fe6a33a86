package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"
)

// ErrVoteNotFound is a domain-specific error returned when a vote is not found.
var ErrVoteNotFound = errors.New("vote not found")

// VoteRepository defines the standard operations for vote persistence.
// A vote is identified by its composite (post, owner) key; the storage
// layer's primary key is the single authority on vote uniqueness.
type VoteRepository interface {
	// Find retrieves the vote for a (post, owner) pair, or ErrVoteNotFound.
	Find(ctx context.Context, postID, ownerID int64) (*entity.Vote, error)

	// Create persists a new vote. Returns ErrDuplicateKey when the pair has
	// already voted, including when a concurrent insert won the race.
	Create(ctx context.Context, vote *entity.Vote) error

	// Delete removes the vote for a (post, owner) pair. Returns
	// ErrVoteNotFound when no row was deleted.
	Delete(ctx context.Context, postID, ownerID int64) error
}
