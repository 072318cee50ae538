package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. Comments are the sole source of
// truth for a post's comment data; nothing is duplicated onto the post row.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Author    Author         `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	PostID    uint           `gorm:"not null;index" json:"post_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
