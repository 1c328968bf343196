package repositories

import (
	"testing"
	"time"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.UserBadge{},
		&models.FollowRequest{},
		&models.Following{},
	)
	require.NoError(t, err)
	return db
}

func TestCreateUserBadgeIfAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresBadgeRepository(db)

	now := time.Now()
	created, err := repo.CreateUserBadgeIfAbsent(&models.UserBadge{
		UserID:          1,
		BadgeID:         2,
		CurrentProgress: 1,
		EarnedDate:      &now,
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateUserBadgeIfAbsent(&models.UserBadge{
		UserID:          1,
		BadgeID:         2,
		CurrentProgress: 99,
	})
	require.NoError(t, err)
	assert.False(t, created)

	// The original row survives the ignored insert.
	ub, err := repo.GetUserBadge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, ub.CurrentProgress)
	assert.NotNil(t, ub.EarnedDate)
}

func TestAddProgress(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresBadgeRepository(db)

	require.NoError(t, repo.AddProgress(1, 2, 3))
	require.NoError(t, repo.AddProgress(1, 2, 4))

	ub, err := repo.GetUserBadge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, ub.CurrentProgress)

	// Another pair gets its own row.
	require.NoError(t, repo.AddProgress(1, 3, 1))
	ub, err = repo.GetUserBadge(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, ub.CurrentProgress)
}

func TestListUserBadgesIncludesUnearned(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresBadgeRepository(db)

	badges := []models.Badge{
		{Name: "First", Description: "a", BadgeType: "social", ProgressRequired: 1, ProgressType: models.ProgressCount},
		{Name: "Second", Description: "b", BadgeType: "social", ProgressRequired: 5, ProgressType: models.ProgressCount},
	}
	require.NoError(t, db.Create(&badges).Error)

	now := time.Now()
	_, err := repo.CreateUserBadgeIfAbsent(&models.UserBadge{
		UserID:          1,
		BadgeID:         badges[1].ID,
		CurrentProgress: 5,
		EarnedDate:      &now,
	})
	require.NoError(t, err)

	views, err := repo.ListUserBadges(1)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Earned first, then the untouched badge with zero progress.
	assert.Equal(t, "Second", views[0].Name)
	assert.NotNil(t, views[0].EarnedDate)
	assert.Equal(t, "First", views[1].Name)
	assert.Nil(t, views[1].EarnedDate)
	assert.Equal(t, 0, views[1].CurrentProgress)
}
