package services

import (
	"context"
	"testing"
	"time"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAppendsDistinctEntries(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	recorder := NewActionRecorder(db)

	first, err := recorder.Record(user.ID, models.ActionLikePost, nil, "abc123")
	require.NoError(t, err)
	second, err := recorder.Record(user.ID, models.ActionLikePost, nil, "abc123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	target := uint(42)
	_, err = recorder.Record(user.ID, models.ActionFollowUser, &target, "")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.UserAction{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestRecordRejectsUnknownActionType(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	recorder := NewActionRecorder(db)

	_, err := recorder.Record(user.ID, models.ActionType("teleport"), nil, "")
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.UserAction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCountsByType(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	recorder := NewActionRecorder(db)

	recordActions(t, recorder, alice.ID, models.ActionLikePost, 3)
	recordActions(t, recorder, alice.ID, models.ActionCommentPost, 1)
	recordActions(t, recorder, bob.ID, models.ActionLikePost, 7)

	counts, err := recorder.CountsByType(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[models.ActionLikePost])
	assert.Equal(t, int64(1), counts[models.ActionCommentPost])
	_, present := counts[models.ActionSharePost]
	assert.False(t, present)
}

func TestUserStats(t *testing.T) {
	db := newTestDB(t)
	posts := newFakePostRepository()
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	badges := NewBadgeService(db)
	follows := NewFollowService(db, badges)
	engagement := NewEngagementService(db, posts, badges)
	stats := NewStatsService(db, posts)

	post, err := engagement.CreatePost(context.Background(), alice.ID, models.CreatePostRequest{Content: "hello"})
	require.NoError(t, err)
	_, err = engagement.LikePost(context.Background(), bob.ID, post.ID.Hex())
	require.NoError(t, err)

	_, err = engagement.CreateEvent(alice.ID, models.CreateEventRequest{
		Name: "Picnic",
		Date: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	ok, err := follows.RequestFollow(bob.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, ok)
	req, err := follows.RequestState(bob.ID, alice.ID)
	require.NoError(t, err)
	ok, err = follows.Respond(req.ID, alice.ID, true)
	require.NoError(t, err)
	require.True(t, ok)

	s, err := stats.UserStats(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.PostCount)
	assert.Equal(t, int64(1), s.TotalLikes)
	assert.Equal(t, int64(1), s.FollowerCount)
	assert.Equal(t, int64(0), s.FollowingCount)
	assert.Equal(t, int64(1), s.EventCount)
	assert.Equal(t, int64(0), s.BadgeCount)

	s, err = stats.UserStats(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.PostCount)
	assert.Equal(t, int64(1), s.FollowingCount)
	// Bob earned "Like a lover!" and "Friends" along the way.
	assert.Equal(t, int64(2), s.BadgeCount)
}
