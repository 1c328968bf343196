package models

import "time"

// RequestStatus is the state of a follow request.
type RequestStatus string

const (
	// RequestPending means the request awaits the target's decision.
	RequestPending RequestStatus = "pending"

	// RequestAccepted and RequestRejected are terminal.
	RequestAccepted RequestStatus = "accepted"
	RequestRejected RequestStatus = "rejected"
)

// FollowRequest is a proposal to follow another user, subject to the target's
// approval. One row exists per (requester, target) pair; a new request after a
// terminal outcome resets the existing row back to pending.
type FollowRequest struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	RequesterID uint          `json:"requester_id" gorm:"index;uniqueIndex:idx_requester_target;not null"`
	TargetID    uint          `json:"target_id" gorm:"index;uniqueIndex:idx_requester_target;not null"`
	Status      RequestStatus `json:"status" gorm:"size:20;default:'pending';not null"`
	RequestedAt time.Time     `json:"requested_at" gorm:"autoCreateTime"`
	RespondedAt *time.Time    `json:"responded_at,omitempty"`
}

// Following is the materialized one-directional follow edge, created only via
// an accepted FollowRequest and deleted on unfollow.
type Following struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed;not null"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed;not null"`
	FollowDate time.Time `json:"follow_date" gorm:"autoCreateTime"`
}

// RespondFollowRequest defines the request body for accepting or rejecting a follow request
type RespondFollowRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accept reject"`
}
