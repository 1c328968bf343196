package services

import (
	"testing"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFollowCreatesPendingAndNotifies(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	follows := NewFollowService(db, NewBadgeService(db))

	ok, err := follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	req, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, models.RequestPending, req.Status)

	var notifs []models.Notification
	require.NoError(t, db.Where("user_id = ?", bob.ID).Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, models.NotificationFollowRequest, notifs[0].Type)
	assert.Equal(t, "alice sent you a follow request", notifs[0].Message)
}

func TestRequestFollowDuplicatePending(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	follows := NewFollowService(db, NewBadgeService(db))

	ok, err := follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	var reqCount int64
	require.NoError(t, db.Model(&models.FollowRequest{}).Count(&reqCount).Error)
	assert.Equal(t, int64(1), reqCount)

	// The duplicate attempt must not fan out a second notification.
	var notifCount int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", bob.ID).Count(&notifCount).Error)
	assert.Equal(t, int64(1), notifCount)
}

func TestRequestFollowSelf(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	follows := NewFollowService(db, NewBadgeService(db))

	ok, err := follows.RequestFollow(alice.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRespondAccept(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	follows := NewFollowService(db, NewBadgeService(db))

	ok, err := follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)
	req, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)

	ok, err = follows.Respond(req.ID, bob.ID, true)
	require.NoError(t, err)
	assert.True(t, ok)

	following, err := follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	req, err = follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, req.Status)
	assert.NotNil(t, req.RespondedAt)

	// The requester gets an acceptance notification and, via the recorded
	// follow action, the "Friends" badge.
	var notifs []models.Notification
	require.NoError(t, db.Where("user_id = ? AND type = ?", alice.ID, models.NotificationFollowAccept).Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, "bob accepted your follow request", notifs[0].Message)

	friends := badgeByName(t, db, "Friends")
	var ub models.UserBadge
	require.NoError(t, db.Where("user_id = ? AND badge_id = ?", alice.ID, friends.ID).First(&ub).Error)
	assert.NotNil(t, ub.EarnedDate)
}

func TestRespondAcceptIdempotent(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	follows := NewFollowService(db, NewBadgeService(db))

	_, err := follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	req, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)

	ok, err := follows.Respond(req.ID, bob.ID, true)
	require.NoError(t, err)
	require.True(t, ok)

	// A second decision on the same request is refused.
	ok, err = follows.Respond(req.ID, bob.ID, true)
	require.NoError(t, err)
	assert.False(t, ok)

	var edgeCount int64
	require.NoError(t, db.Model(&models.Following{}).Count(&edgeCount).Error)
	assert.Equal(t, int64(1), edgeCount)
}

func TestRespondReject(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	follows := NewFollowService(db, NewBadgeService(db))

	_, err := follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	req, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)

	ok, err := follows.Respond(req.ID, bob.ID, false)
	require.NoError(t, err)
	assert.True(t, ok)

	following, err := follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	req, err = follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, req.Status)

	// Rejection is silent toward the requester.
	var notifCount int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", alice.ID).Count(&notifCount).Error)
	assert.Equal(t, int64(0), notifCount)
}

func TestRespondWrongTarget(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	follows := NewFollowService(db, NewBadgeService(db))

	_, err := follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	req, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)

	// Carol cannot decide a request addressed to Bob.
	ok, err := follows.Respond(req.ID, carol.ID, true)
	require.NoError(t, err)
	assert.False(t, ok)

	fresh, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, fresh.Status)
}

func TestRespondUnknownRequest(t *testing.T) {
	db := newTestDB(t)
	bob := createTestUser(t, db, "bob")
	follows := NewFollowService(db, NewBadgeService(db))

	ok, err := follows.Respond(12345, bob.ID, true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequestFollowAfterRejection(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	follows := NewFollowService(db, NewBadgeService(db))

	_, err := follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	req, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)
	firstRequested := req.RequestedAt

	ok, err := follows.Respond(req.ID, bob.ID, false)
	require.NoError(t, err)
	require.True(t, ok)

	// A rejected pair can ask again; the existing row is reset to pending.
	ok, err = follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	fresh, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, fresh.ID)
	assert.Equal(t, models.RequestPending, fresh.Status)
	assert.Nil(t, fresh.RespondedAt)
	assert.False(t, fresh.RequestedAt.Before(firstRequested))

	var reqCount int64
	require.NoError(t, db.Model(&models.FollowRequest{}).Count(&reqCount).Error)
	assert.Equal(t, int64(1), reqCount)
}

func TestUnfollow(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	follows := NewFollowService(db, NewBadgeService(db))

	_, err := follows.RequestFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	req, err := follows.RequestState(alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = follows.Respond(req.ID, bob.ID, true)
	require.NoError(t, err)

	removed, err := follows.Unfollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	following, err := follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	removed, err = follows.Unfollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestPendingRequests(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")
	follows := NewFollowService(db, NewBadgeService(db))

	_, err := follows.RequestFollow(alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = follows.RequestFollow(bob.ID, carol.ID)
	require.NoError(t, err)

	pending, err := follows.PendingRequests(carol.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	req, err := follows.RequestState(alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = follows.Respond(req.ID, carol.ID, true)
	require.NoError(t, err)

	pending, err = follows.PendingRequests(carol.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, bob.ID, pending[0].RequesterID)
}
