package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// CastVoteInput defines a vote transition request. Dir selects the
// transition: 1 adds a vote, 0 removes it.
type CastVoteInput struct {
	PostID int64
	Dir    int8
}

// VoteUsecase defines the vote state machine over a (post, user) pair.
//
// Add is strictly non-idempotent: a second add for the same pair is a
// conflict, not a silent no-op. Remove of an absent vote is not found.
type VoteUsecase interface {
	// CastVote applies the requested transition for the acting user.
	// Returns the created vote for an add; nil for a successful remove.
	CastVote(ctx context.Context, actorID int64, input *CastVoteInput) (*entity.Vote, error)
}
