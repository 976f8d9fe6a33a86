package model

import "time"

// VoteModel mirrors the 'votes' table. The composite (post_id, owner_id)
// primary key is the authority for vote uniqueness: a concurrent duplicate
// insert fails here, not in application logic.
type VoteModel struct {
	PostID    int64 `gorm:"primaryKey;autoIncrement:false"`
	OwnerID   int64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoteModel) TableName() string {
	return "votes"
}
