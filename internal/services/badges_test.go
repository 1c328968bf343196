package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordActions(t *testing.T, recorder *ActionRecorder, userID uint, actionType models.ActionType, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := recorder.Record(userID, actionType, nil, "")
		require.NoError(t, err)
	}
}

func TestAwardEligibleBadgesAwardsOnce(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	recorder := NewActionRecorder(db)
	badges := NewBadgeService(db)

	// "Like a lover!" requires a single like action.
	recordActions(t, recorder, user.ID, models.ActionLikePost, 1)

	awarded, err := badges.AwardEligibleBadges(user.ID)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	assert.Equal(t, "Like a lover!", awarded[0].Name)

	var rows []models.UserBadge
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].CurrentProgress)
	require.NotNil(t, rows[0].EarnedDate)

	// Re-running must not create a second row or a second notification.
	awarded, err = badges.AwardEligibleBadges(user.ID)
	require.NoError(t, err)
	assert.Empty(t, awarded)

	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&rows).Error)
	assert.Len(t, rows, 1)

	var notifCount int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", user.ID, models.NotificationBadge).
		Count(&notifCount).Error)
	assert.Equal(t, int64(1), notifCount)
}

func TestAwardEligibleBadgesThreshold(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "bob")
	recorder := NewActionRecorder(db)
	badges := NewBadgeService(db)

	// "Event Enthusiast" requires five participations.
	recordActions(t, recorder, user.ID, models.ActionParticipateEvent, 4)

	awarded, err := badges.AwardEligibleBadges(user.ID)
	require.NoError(t, err)
	assert.Empty(t, awarded)

	recordActions(t, recorder, user.ID, models.ActionParticipateEvent, 1)

	awarded, err = badges.AwardEligibleBadges(user.ID)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	assert.Equal(t, "Event Enthusiast", awarded[0].Name)

	ub, err := repositories.NewPostgresBadgeRepository(db).GetUserBadge(user.ID, awarded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 5, ub.CurrentProgress)
}

func TestAwardEligibleBadgesSkipsManualBadges(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "carol")
	badges := NewBadgeService(db)

	manual := &models.Badge{
		Name:             "Founding Member",
		Description:      "Curated badge",
		BadgeType:        "social",
		ProgressRequired: 1,
		ProgressType:     models.ProgressBoolean,
	}
	require.NoError(t, db.Create(manual).Error)

	awarded, err := badges.AwardEligibleBadges(user.ID)
	require.NoError(t, err)
	assert.Empty(t, awarded)

	// The manual path awards it, exactly once.
	ok, err := badges.AwardManual(user.ID, manual.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = badges.AwardManual(user.ID, manual.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAwardRollsBackWhenNotificationWriteFails(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "grace")
	recorder := NewActionRecorder(db)
	badges := NewBadgeService(db)

	recordActions(t, recorder, user.ID, models.ActionLikePost, 1)

	// Failing the notification insert must also undo the badge insert, so a
	// later re-run can award and notify together.
	require.NoError(t, db.Migrator().DropTable(&models.Notification{}))
	_, err := badges.AwardEligibleBadges(user.ID)
	require.Error(t, err)

	var badgeRows int64
	require.NoError(t, db.Model(&models.UserBadge{}).Where("user_id = ?", user.ID).Count(&badgeRows).Error)
	assert.Equal(t, int64(0), badgeRows)

	require.NoError(t, db.AutoMigrate(&models.Notification{}))
	awarded, err := badges.AwardEligibleBadges(user.ID)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	assert.Equal(t, "Like a lover!", awarded[0].Name)

	var notifCount int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", user.ID, models.NotificationBadge).
		Count(&notifCount).Error)
	assert.Equal(t, int64(1), notifCount)
}

func TestAwardManualUnknownBadge(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "dave")
	badges := NewBadgeService(db)

	ok, err := badges.AwardManual(user.ID, 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIncrementProgress(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "erin")
	badges := NewBadgeService(db)
	badge := badgeByName(t, db, "Weekly Interaction")

	require.NoError(t, badges.IncrementProgress(user.ID, badge.ID, 2))
	require.NoError(t, badges.IncrementProgress(user.ID, badge.ID, 3))

	ub, err := repositories.NewPostgresBadgeRepository(db).GetUserBadge(user.ID, badge.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, ub.CurrentProgress)

	err = badges.IncrementProgress(user.ID, badge.ID, 0)
	assert.Error(t, err)
}

func TestIsCompletedMonotonic(t *testing.T) {
	badge := &models.Badge{ProgressRequired: 5, ProgressType: models.ProgressCount}

	completed := false
	for progress := 0; progress <= 20; progress++ {
		ub := &models.UserBadge{CurrentProgress: progress}
		now := IsCompleted(ub, badge)
		if completed {
			assert.True(t, now, "completion flipped back to false at progress %d", progress)
		}
		completed = now
	}
	assert.True(t, completed)
}

func TestIsCompletedBoolean(t *testing.T) {
	badge := &models.Badge{ProgressRequired: 10, ProgressType: models.ProgressBoolean}

	assert.False(t, IsCompleted(&models.UserBadge{CurrentProgress: 0}, badge))
	// Boolean badges complete on any progress, regardless of threshold.
	assert.True(t, IsCompleted(&models.UserBadge{CurrentProgress: 1}, badge))
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		required int
		ptype    models.ProgressType
		want     int
	}{
		{"zero progress", 0, 5, models.ProgressCount, 0},
		{"partial", 2, 5, models.ProgressCount, 40},
		{"exact", 5, 5, models.ProgressCount, 100},
		{"clamped far above threshold", 500, 5, models.ProgressCount, 100},
		{"zero threshold guard", 3, 0, models.ProgressCount, 0},
		{"boolean incomplete", 0, 1, models.ProgressBoolean, 0},
		{"boolean complete", 1, 1, models.ProgressBoolean, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge := &models.Badge{ProgressRequired: tt.required, ProgressType: tt.ptype}
			ub := &models.UserBadge{CurrentProgress: tt.progress}
			assert.Equal(t, tt.want, ProgressPercentage(ub, badge))
		})
	}
}

func TestUserBadgesEarnedFirst(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "frank")
	badges := NewBadgeService(db)

	// Earn a late-seeded badge so earned-first ordering differs from ID order.
	shareBadge := badgeByName(t, db, "Sharing is caring")
	now := time.Now()
	require.NoError(t, db.Create(&models.UserBadge{
		UserID:          user.ID,
		BadgeID:         shareBadge.ID,
		CurrentProgress: 1,
		EarnedDate:      &now,
	}).Error)

	views, err := badges.UserBadges(user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, views)
	assert.Equal(t, shareBadge.Name, views[0].Name)
	require.NotNil(t, views[0].EarnedDate)
	for _, v := range views[1:] {
		assert.Nil(t, v.EarnedDate, fmt.Sprintf("unearned badge %q sorted before earned", v.Name))
	}
}
