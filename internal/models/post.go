package models

import (
	"time"

	"gorm.io/gorm"
)

// Author is a point-in-time copy of a user's id and username, embedded in
// posts and comments at creation. Renaming a user does not rewrite it.
type Author struct {
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Username string `gorm:"not null" json:"username"`
}

// Post represents a post in the Ripple application. Text and image are both
// optional; the server enforces no cross-field requirement.
type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"type:text" json:"text"`
	Image  string `json:"image"`
	Author Author `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
