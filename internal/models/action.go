package models

import "time"

// ActionType identifies an engagement-relevant behavior tracked for badges.
type ActionType string

const (
	ActionCreatePost        ActionType = "create_post"
	ActionLikePost          ActionType = "like_post"
	ActionCommentPost       ActionType = "comment_post"
	ActionFollowUser        ActionType = "follow_user"
	ActionParticipateEvent  ActionType = "participate_event"
	ActionSharePost         ActionType = "share_post"
	ActionCreateEvent       ActionType = "create_event"
	ActionWeeklyInteraction ActionType = "weekly_interaction"
	ActionShareStory        ActionType = "share_story"
	ActionOrganizeEvent     ActionType = "organize_event"
)

// IsValid reports whether the action type is one of the known engagement actions.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionCreatePost, ActionLikePost, ActionCommentPost, ActionFollowUser,
		ActionParticipateEvent, ActionSharePost, ActionCreateEvent,
		ActionWeeklyInteraction, ActionShareStory, ActionOrganizeEvent:
		return true
	}
	return false
}

// UserAction is one row of the append-only engagement log. Rows are never
// updated or deleted; badge progress is derived by aggregating them.
type UserAction struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"index;not null"`
	ActionType  ActionType `json:"action_type" gorm:"size:30;index;not null"`
	TargetID    *uint      `json:"target_id,omitempty"`
	ActionData  string     `json:"action_data,omitempty"`
	PerformedAt time.Time  `json:"performed_at" gorm:"autoCreateTime;index"`
}
