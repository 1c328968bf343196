package services

import (
	"testing"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema and the
// default badge set.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserAction{},
		&models.Badge{},
		&models.UserBadge{},
		&models.FollowRequest{},
		&models.Following{},
		&models.Notification{},
		&models.Event{},
		&models.EventParticipant{},
		&models.Comment{},
		&models.Like{},
		&models.PostPrompt{},
	)
	require.NoError(t, err)

	require.NoError(t, repositories.SeedDefaultBadges(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		UserType: "youth",
		AgeGroup: "youth",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func badgeByName(t *testing.T, db *gorm.DB, name string) *models.Badge {
	t.Helper()
	var badge models.Badge
	require.NoError(t, db.Where("name = ?", name).First(&badge).Error)
	return &badge
}
