package services

import (
	"fmt"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"gorm.io/gorm"
)

// ActionRecorder appends entries to the engagement log. The log is
// append-only and has no uniqueness constraint: a user may repeat the same
// action type arbitrarily many times, each producing a distinct entry.
type ActionRecorder struct {
	db *gorm.DB
}

// NewActionRecorder creates a new ActionRecorder
func NewActionRecorder(db *gorm.DB) *ActionRecorder {
	return &ActionRecorder{db: db}
}

// Record appends one log entry and returns its ID. TargetID may be nil for
// actions without a relational target; actionData carries document IDs.
func (s *ActionRecorder) Record(userID uint, actionType models.ActionType, targetID *uint, actionData string) (uint, error) {
	action := models.UserAction{
		UserID:     userID,
		ActionType: actionType,
		TargetID:   targetID,
		ActionData: actionData,
	}
	if err := appendAction(s.db, &action); err != nil {
		return 0, err
	}
	return action.ID, nil
}

// CountsByType aggregates the user's full action log into counts per type.
func (s *ActionRecorder) CountsByType(userID uint) (map[models.ActionType]int64, error) {
	return repositories.NewPostgresActionRepository(s.db).CountsByType(userID)
}

// Recent returns the user's latest log entries, newest first.
func (s *ActionRecorder) Recent(userID uint, limit int) ([]models.UserAction, error) {
	return repositories.NewPostgresActionRepository(s.db).ListByUser(userID, limit)
}

// appendAction validates the action type and writes the log entry through the
// given handle, which may be a transaction.
func appendAction(db *gorm.DB, action *models.UserAction) error {
	if !action.ActionType.IsValid() {
		return fmt.Errorf("unknown action type %q", action.ActionType)
	}
	return repositories.NewPostgresActionRepository(db).Append(action)
}
