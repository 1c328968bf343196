package models

import "time"

// Event is a community event organized by a user.
type Event struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:200;not null"`
	Itinerary       string    `json:"itinerary,omitempty"`
	Duration        string    `json:"duration,omitempty" gorm:"size:50"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location,omitempty" gorm:"size:200"`
	MaxParticipants int       `json:"max_participants" gorm:"default:0"` // 0 means unlimited
	OrganizerID     uint      `json:"organizer_id" gorm:"index;not null"`
	GameType        string    `json:"game_type,omitempty" gorm:"size:50"`
	GameRules       string    `json:"game_rules,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// EventParticipant is one user's registration for one event.
type EventParticipant struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	EventID  uint      `json:"event_id" gorm:"index;uniqueIndex:idx_event_user;not null"`
	UserID   uint      `json:"user_id" gorm:"index;uniqueIndex:idx_event_user;not null"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}

type CreateEventRequest struct {
	Name            string    `json:"name" validate:"required,min=2,max=200"`
	Itinerary       string    `json:"itinerary,omitempty"`
	Duration        string    `json:"duration,omitempty" validate:"omitempty,max=50"`
	Date            time.Time `json:"date" validate:"required"`
	Location        string    `json:"location,omitempty" validate:"omitempty,max=200"`
	MaxParticipants int       `json:"max_participants" validate:"min=0"`
	GameType        string    `json:"game_type,omitempty" validate:"omitempty,max=50"`
	GameRules       string    `json:"game_rules,omitempty"`
}
