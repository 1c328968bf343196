package models

import "time"

// ProgressType controls how badge completion is evaluated.
type ProgressType string

const (
	ProgressCount      ProgressType = "count"
	ProgressPercentage ProgressType = "percentage"
	ProgressBoolean    ProgressType = "boolean"
)

// Badge is a global badge definition, created at bootstrap and read-mostly.
// Criteria is the action type whose cumulative count drives automatic
// eligibility; badges with a nil Criteria are only awarded manually.
type Badge struct {
	ID               uint         `json:"id" gorm:"primaryKey"`
	Name             string       `json:"name" gorm:"size:100;not null"`
	Description      string       `json:"description"`
	BadgeType        string       `json:"badge_type" gorm:"size:30;not null"` // social, event, content
	Criteria         *ActionType  `json:"criteria,omitempty" gorm:"size:30"`
	ProgressRequired int          `json:"progress_required" gorm:"default:1;not null"`
	ProgressType     ProgressType `json:"progress_type" gorm:"size:20;default:'count';not null"`
}

// UserBadge tracks one user's progress toward one badge. At most one row
// exists per (user, badge) pair; EarnedDate stays nil until completion.
type UserBadge struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"user_id" gorm:"index;uniqueIndex:idx_user_badge;not null"`
	BadgeID         uint       `json:"badge_id" gorm:"uniqueIndex:idx_user_badge;not null"`
	CurrentProgress int        `json:"current_progress" gorm:"default:0;not null"`
	EarnedDate      *time.Time `json:"earned_date,omitempty"`
}

// UserBadgeView is a badge definition joined with one user's progress row.
// Progress fields are zero-valued when the user has no row yet.
type UserBadgeView struct {
	Badge
	CurrentProgress int        `json:"current_progress"`
	EarnedDate      *time.Time `json:"earned_date,omitempty"`
}
