package entity

import "time"

// Vote direction values accepted by the vote endpoint. The stored state is
// binary: a (post, user) row exists (liked) or it does not. Direction only
// selects the transition.
const (
	VoteDirectionRemove int8 = 0
	VoteDirectionAdd    int8 = 1
)

// Vote marks that a user has liked a post. Identified by the composite
// (PostID, OwnerID) pair; at most one row may exist per pair, enforced by the
// storage layer's primary key.
type Vote struct {
	PostID    int64     // The liked post.
	OwnerID   int64     // The voting user.
	CreatedAt time.Time // Timestamp of when the vote was cast.
}
