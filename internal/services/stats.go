package services

import (
	"context"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"gorm.io/gorm"
)

// UserStats is the engagement summary shown on a profile.
type UserStats struct {
	PostCount      int64 `json:"post_count"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	EventCount     int64 `json:"event_count"`
	BadgeCount     int64 `json:"badge_count"`
	TotalLikes     int64 `json:"total_likes"`
}

// StatsService aggregates per-user engagement statistics.
type StatsService struct {
	db    *gorm.DB
	posts repositories.PostRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(db *gorm.DB, posts repositories.PostRepository) *StatsService {
	return &StatsService{db: db, posts: posts}
}

// UserStats collects the user's engagement summary.
func (s *StatsService) UserStats(ctx context.Context, userID uint) (*UserStats, error) {
	stats := &UserStats{}

	var err error
	if stats.PostCount, err = s.posts.CountByAuthor(ctx, userID); err != nil {
		return nil, err
	}
	if stats.TotalLikes, err = s.posts.TotalLikesByAuthor(ctx, userID); err != nil {
		return nil, err
	}

	followRepo := repositories.NewPostgresFollowRepository(s.db)
	if stats.FollowerCount, err = followRepo.GetFollowersCount(userID); err != nil {
		return nil, err
	}
	if stats.FollowingCount, err = followRepo.GetFollowingCount(userID); err != nil {
		return nil, err
	}

	if stats.EventCount, err = repositories.NewPostgresEventRepository(s.db).CountByOrganizer(userID); err != nil {
		return nil, err
	}

	err = s.db.Model(&models.UserBadge{}).
		Where("user_id = ? AND earned_date IS NOT NULL", userID).
		Count(&stats.BadgeCount).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
