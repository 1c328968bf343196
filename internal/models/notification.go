package models

import "time"

// NotificationType is the closed set of events a user can be notified about.
type NotificationType string

const (
	NotificationLike          NotificationType = "like"
	NotificationComment       NotificationType = "comment"
	NotificationFollowRequest NotificationType = "follow_request"
	NotificationFollowAccept  NotificationType = "follow_accept"
	NotificationBadge         NotificationType = "badge"
	NotificationEventJoin     NotificationType = "event_join"
)

// IsValid reports whether the notification type is known.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationLike, NotificationComment, NotificationFollowRequest,
		NotificationFollowAccept, NotificationBadge, NotificationEventJoin:
		return true
	}
	return false
}

// Notification is a durable, user-scoped record of an event relevant to that
// user. Only IsRead is ever mutated; rows are never auto-deleted.
type Notification struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    uint             `json:"user_id" gorm:"index;not null"` // recipient
	Type      NotificationType `json:"type" gorm:"size:30;index;not null"`
	Message   string           `json:"message" gorm:"not null"`
	RelatedID string           `json:"related_id,omitempty"` // user ID, badge ID, event ID or post hex ID
	IsRead    bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time        `json:"created_at" gorm:"index"`
}
