package models

import "time"

// Like represents a user's like on a post.
// The unique index on (UserID, PostID) is what keeps a user id from
// appearing more than once in a post's liker set.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
