package repositories

import (
	"testing"
	"time"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestIfAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	created, err := repo.CreateRequestIfAbsent(&models.FollowRequest{
		RequesterID: 1,
		TargetID:    2,
		Status:      models.RequestPending,
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateRequestIfAbsent(&models.FollowRequest{
		RequesterID: 1,
		TargetID:    2,
		Status:      models.RequestPending,
	})
	require.NoError(t, err)
	assert.False(t, created)

	// The reversed direction is a distinct pair.
	created, err = repo.CreateRequestIfAbsent(&models.FollowRequest{
		RequesterID: 2,
		TargetID:    1,
		Status:      models.RequestPending,
	})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestResetRequestPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	_, err := repo.CreateRequestIfAbsent(&models.FollowRequest{
		RequesterID: 1,
		TargetID:    2,
		Status:      models.RequestPending,
	})
	require.NoError(t, err)
	req, err := repo.GetRequestByPair(1, 2)
	require.NoError(t, err)

	// Resetting a pending request changes nothing.
	require.NoError(t, repo.ResetRequestPending(req.ID))
	fresh, err := repo.GetRequestByPair(1, 2)
	require.NoError(t, err)
	assert.Equal(t, req.RequestedAt.Unix(), fresh.RequestedAt.Unix())

	require.NoError(t, repo.SetRequestStatus(req.ID, models.RequestRejected, time.Now()))
	require.NoError(t, repo.ResetRequestPending(req.ID))

	fresh, err = repo.GetRequestByPair(1, 2)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, fresh.Status)
	assert.Nil(t, fresh.RespondedAt)
}

func TestFollowEdgeLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	created, err := repo.CreateFollowIfAbsent(&models.Following{FollowerID: 1, FollowedID: 2})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateFollowIfAbsent(&models.Following{FollowerID: 1, FollowedID: 2})
	require.NoError(t, err)
	assert.False(t, created)

	following, err := repo.IsFollowing(1, 2)
	require.NoError(t, err)
	assert.True(t, following)
	following, err = repo.IsFollowing(2, 1)
	require.NoError(t, err)
	assert.False(t, following)

	removed, err := repo.DeleteFollow(1, 2)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.DeleteFollow(1, 2)
	require.NoError(t, err)
	assert.False(t, removed)
}
