package repositories

import (
	"github.com/bondbuddies/backend/internal/models"
	"gorm.io/gorm"
)

// ActionRepository defines the interface for the append-only engagement log
type ActionRepository interface {
	Append(action *models.UserAction) error
	CountsByType(userID uint) (map[models.ActionType]int64, error)
	ListByUser(userID uint, limit int) ([]models.UserAction, error)
}

// PostgresActionRepository implements ActionRepository for PostgreSQL
type PostgresActionRepository struct {
	db *gorm.DB
}

// NewPostgresActionRepository creates a new PostgresActionRepository
func NewPostgresActionRepository(db *gorm.DB) *PostgresActionRepository {
	return &PostgresActionRepository{db: db}
}

func (r *PostgresActionRepository) Append(action *models.UserAction) error {
	return r.db.Create(action).Error
}

// CountsByType aggregates the user's full action log into counts per action type.
func (r *PostgresActionRepository) CountsByType(userID uint) (map[models.ActionType]int64, error) {
	type row struct {
		ActionType models.ActionType
		Count      int64
	}
	var rows []row
	err := r.db.Model(&models.UserAction{}).
		Select("action_type, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("action_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ActionType]int64, len(rows))
	for _, row := range rows {
		counts[row.ActionType] = row.Count
	}
	return counts, nil
}

func (r *PostgresActionRepository) ListByUser(userID uint, limit int) ([]models.UserAction, error) {
	var actions []models.UserAction
	err := r.db.Where("user_id = ?", userID).
		Order("performed_at DESC").
		Limit(limit).
		Find(&actions).Error
	return actions, err
}
