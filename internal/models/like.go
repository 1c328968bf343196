package models

import "time"

// Like guards against duplicate likes of the same post by the same user.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like;size:24;not null"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like;not null"`
	CreatedAt time.Time `json:"created_at"`
}
