package repositories

import (
	"github.com/bondbuddies/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BadgeRepository defines the interface for badge data operations
type BadgeRepository interface {
	ListBadges() ([]models.Badge, error)
	GetBadgeByID(id uint) (*models.Badge, error)
	CreateUserBadgeIfAbsent(ub *models.UserBadge) (bool, error)
	AddProgress(userID, badgeID uint, amount int) error
	GetUserBadge(userID, badgeID uint) (*models.UserBadge, error)
	ListUserBadges(userID uint) ([]models.UserBadgeView, error)
}

// PostgresBadgeRepository implements BadgeRepository for PostgreSQL
type PostgresBadgeRepository struct {
	db *gorm.DB
}

// NewPostgresBadgeRepository creates a new PostgresBadgeRepository
func NewPostgresBadgeRepository(db *gorm.DB) *PostgresBadgeRepository {
	return &PostgresBadgeRepository{db: db}
}

func (r *PostgresBadgeRepository) ListBadges() ([]models.Badge, error) {
	var badges []models.Badge
	err := r.db.Order("id").Find(&badges).Error
	return badges, err
}

func (r *PostgresBadgeRepository) GetBadgeByID(id uint) (*models.Badge, error) {
	var badge models.Badge
	if err := r.db.First(&badge, id).Error; err != nil {
		return nil, err
	}
	return &badge, nil
}

// CreateUserBadgeIfAbsent inserts the row unless one already exists for the
// (user, badge) pair. The conflict is resolved by the database so concurrent
// awards cannot race; it reports whether the row was actually created.
func (r *PostgresBadgeRepository) CreateUserBadgeIfAbsent(ub *models.UserBadge) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
		DoNothing: true,
	}).Create(ub)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddProgress atomically adds to an existing progress row, creating it with
// the given amount when absent.
func (r *PostgresBadgeRepository) AddProgress(userID, badgeID uint, amount int) error {
	ub := models.UserBadge{UserID: userID, BadgeID: badgeID, CurrentProgress: amount}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"current_progress": gorm.Expr("current_progress + ?", amount),
		}),
	}).Create(&ub).Error
}

func (r *PostgresBadgeRepository) GetUserBadge(userID, badgeID uint) (*models.UserBadge, error) {
	var ub models.UserBadge
	if err := r.db.Where("user_id = ? AND badge_id = ?", userID, badgeID).First(&ub).Error; err != nil {
		return nil, err
	}
	return &ub, nil
}

// ListUserBadges returns every badge joined with the user's progress row,
// earned badges first.
func (r *PostgresBadgeRepository) ListUserBadges(userID uint) ([]models.UserBadgeView, error) {
	var views []models.UserBadgeView
	err := r.db.Model(&models.Badge{}).
		Select("badges.*, COALESCE(user_badges.current_progress, 0) AS current_progress, user_badges.earned_date").
		Joins("LEFT JOIN user_badges ON user_badges.badge_id = badges.id AND user_badges.user_id = ?", userID).
		Order("user_badges.earned_date IS NULL, badges.id").
		Scan(&views).Error
	return views, err
}
