package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	Username   string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email      string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	UserType   string `json:"user_type" gorm:"size:20"` // youth or senior
	AgeGroup   string `json:"age_group,omitempty" gorm:"size:20"`
	Bio        string `json:"bio,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Password   string `json:"-"` // Store hashed password, ignore for JSON serialization
}

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	UserType string `json:"user_type" validate:"required,oneof=youth senior"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type UpdateProfileRequest struct {
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserCompact is the trimmed user shape embedded in enriched responses.
type UserCompact struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}
