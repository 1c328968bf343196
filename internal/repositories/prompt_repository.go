package repositories

import (
	"github.com/bondbuddies/backend/internal/models"
	"gorm.io/gorm"
)

// PromptRepository defines the interface for post prompt operations
type PromptRepository interface {
	ListPrompts() ([]models.PostPrompt, error)
	PromptsForAgeGroup(ageGroup string, limit int) ([]models.PostPrompt, error)
}

// PostgresPromptRepository implements PromptRepository for PostgreSQL
type PostgresPromptRepository struct {
	db *gorm.DB
}

// NewPostgresPromptRepository creates a new PostgresPromptRepository
func NewPostgresPromptRepository(db *gorm.DB) *PostgresPromptRepository {
	return &PostgresPromptRepository{db: db}
}

func (r *PostgresPromptRepository) ListPrompts() ([]models.PostPrompt, error) {
	var prompts []models.PostPrompt
	err := r.db.Order("id").Find(&prompts).Error
	return prompts, err
}

func (r *PostgresPromptRepository) PromptsForAgeGroup(ageGroup string, limit int) ([]models.PostPrompt, error) {
	var prompts []models.PostPrompt
	err := r.db.Where("target_age_group = ? OR target_age_group = ?", ageGroup, "both").
		Limit(limit).
		Find(&prompts).Error
	return prompts, err
}
