package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is stored in MongoDB; engagement side effects (likes, comments,
// actions, notifications) live in PostgreSQL and reference it by hex ID.
type Post struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AuthorID      uint               `json:"author_id" bson:"author_id"`
	Content       string             `json:"content" bson:"content"`
	Category      string             `json:"category,omitempty" bson:"category,omitempty"`
	PromptID      uint               `json:"prompt_id,omitempty" bson:"prompt_id,omitempty"`
	LikesCount    int64              `json:"likes_count" bson:"likes_count"`
	CommentsCount int64              `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

type CreatePostRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=5000"`
	Category string `json:"category,omitempty" validate:"omitempty,max=50"`
	PromptID uint   `json:"prompt_id,omitempty"`
}
