package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"gorm.io/gorm"
)

// BadgeService evaluates accumulated user actions against badge criteria and
// awards each badge at most once per user. Awarding is driven by the
// (user, badge) uniqueness constraint, so re-running any award path is a
// benign no-op.
type BadgeService struct {
	db *gorm.DB
}

// NewBadgeService creates a new BadgeService
func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{db: db}
}

// AwardEligibleBadges re-aggregates the user's action log and awards every
// criteria badge whose count meets its threshold. Each fresh award creates a
// completed progress row and notifies the user. Safe to re-run: badges
// already held are skipped by the insert-or-ignore. Returns the badges
// awarded by this call.
func (s *BadgeService) AwardEligibleBadges(userID uint) ([]models.Badge, error) {
	counts, err := repositories.NewPostgresActionRepository(s.db).CountsByType(userID)
	if err != nil {
		return nil, err
	}

	badgeRepo := repositories.NewPostgresBadgeRepository(s.db)
	badges, err := badgeRepo.ListBadges()
	if err != nil {
		return nil, err
	}

	var awarded []models.Badge
	for _, badge := range badges {
		if badge.Criteria == nil {
			// Curated badges are only awarded manually.
			continue
		}
		count := counts[*badge.Criteria]
		if count < int64(badge.ProgressRequired) {
			continue
		}

		created, err := s.award(userID, badge, int(count))
		if err != nil {
			return awarded, err
		}
		if created {
			awarded = append(awarded, badge)
		}
	}
	return awarded, nil
}

// award inserts the completed progress row and its notification as one unit;
// a fresh insert is never left without its notification.
func (s *BadgeService) award(userID uint, badge models.Badge, progress int) (bool, error) {
	var created bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		var err error
		created, err = repositories.NewPostgresBadgeRepository(tx).CreateUserBadgeIfAbsent(&models.UserBadge{
			UserID:          userID,
			BadgeID:         badge.ID,
			CurrentProgress: progress,
			EarnedDate:      &now,
		})
		if err != nil || !created {
			return err
		}
		return notifyAward(tx, userID, badge)
	})
	return created, err
}

// IncrementProgress adds to an existing progress row, creating it with the
// given amount when absent. Callers maintaining incremental counters converge
// on the same idempotent award path as AwardEligibleBadges.
func (s *BadgeService) IncrementProgress(userID, badgeID uint, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("progress amount must be positive, got %d", amount)
	}
	return repositories.NewPostgresBadgeRepository(s.db).AddProgress(userID, badgeID, amount)
}

// AwardManual directly awards a badge, used for curated badges without
// criteria. Returns false when the user already holds the badge.
func (s *BadgeService) AwardManual(userID, badgeID uint) (bool, error) {
	badgeRepo := repositories.NewPostgresBadgeRepository(s.db)
	badge, err := badgeRepo.GetBadgeByID(badgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.award(userID, *badge, badge.ProgressRequired)
}

// UserBadges returns all badges joined with the user's progress, earned first.
func (s *BadgeService) UserBadges(userID uint) ([]models.UserBadgeView, error) {
	return repositories.NewPostgresBadgeRepository(s.db).ListUserBadges(userID)
}

// ListBadges returns every badge definition.
func (s *BadgeService) ListBadges() ([]models.Badge, error) {
	return repositories.NewPostgresBadgeRepository(s.db).ListBadges()
}

func notifyAward(db *gorm.DB, userID uint, badge models.Badge) error {
	message := fmt.Sprintf("You earned the %s badge!", badge.Name)
	return dispatchNotification(db, userID, models.NotificationBadge, message, fmt.Sprint(badge.ID))
}

// IsCompleted reports whether the progress row completes the badge. Boolean
// badges complete on any progress at all; the others compare against the
// required threshold.
func IsCompleted(ub *models.UserBadge, badge *models.Badge) bool {
	if badge.ProgressType == models.ProgressBoolean {
		return ub.CurrentProgress >= 1
	}
	return ub.CurrentProgress >= badge.ProgressRequired
}

// ProgressPercentage reports completion as 0-100. Boolean badges are all or
// nothing; a zero threshold reads as no progress rather than dividing by zero.
func ProgressPercentage(ub *models.UserBadge, badge *models.Badge) int {
	if badge.ProgressType == models.ProgressBoolean {
		if ub.CurrentProgress >= 1 {
			return 100
		}
		return 0
	}
	if badge.ProgressRequired == 0 {
		return 0
	}
	pct := ub.CurrentProgress * 100 / badge.ProgressRequired
	if pct > 100 {
		return 100
	}
	return pct
}
