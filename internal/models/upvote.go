package models

import (
	"time"
)

// Upvote represents a user's upvote on a post.
// The combination of UserID and PostID must be unique; inserts are idempotent
// so the list is append-only from the client's perspective.
type Upvote struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_upvote_user_post" json:"userId"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_upvote_user_post" json:"-"`
	CreatedAt time.Time `json:"-"`
}
