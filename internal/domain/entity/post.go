package entity

import "time"

// Post is a user-authored entry. Every post belongs to exactly one user; only
// the owner may mutate or delete it.
type Post struct {
	ID        int64     // Database-generated identifier (bigserial).
	OwnerID   int64     // The authoring user's id.
	Title     string    // Human-readable title.
	Content   string    // Main body of the post.
	Published bool      // Whether the post is publicly visible.
	CreatedAt time.Time // Timestamp of when this post was created.
	UpdatedAt time.Time // Timestamp of the last modification to this post.
}

// OwnedBy reports whether the given user is this post's owner. Existence must
// be established before calling this: a missing post is "not found", never
// "forbidden".
func (p *Post) OwnedBy(userID int64) bool {
	return p.OwnerID == userID
}

// PostWithVotes pairs a post with its aggregated vote count for list/read
// responses.
type PostWithVotes struct {
	Post  *Post
	Votes int64
}
