package repositories

import (
	"time"

	"github.com/bondbuddies/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow request and follow edge
// data operations
type FollowRepository interface {
	CreateRequestIfAbsent(req *models.FollowRequest) (bool, error)
	GetRequestByIDAndTarget(requestID, targetID uint) (*models.FollowRequest, error)
	GetRequestByPair(requesterID, targetID uint) (*models.FollowRequest, error)
	SetRequestStatus(requestID uint, status models.RequestStatus, respondedAt time.Time) error
	ResetRequestPending(requestID uint) error
	ListPendingByTarget(targetID uint) ([]models.FollowRequest, error)

	CreateFollowIfAbsent(follow *models.Following) (bool, error)
	DeleteFollow(followerID, followedID uint) (bool, error)
	IsFollowing(followerID, followedID uint) (bool, error)
	GetFollowerIDs(userID uint) ([]uint, error)
	GetFollowingIDs(userID uint) ([]uint, error)
	GetFollowersCount(userID uint) (int64, error)
	GetFollowingCount(userID uint) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateRequestIfAbsent inserts a pending request unless a row already exists
// for the (requester, target) pair. The uniqueness violation is resolved by
// the database, not by a prior existence check, so concurrent requests
// cannot race; it reports whether the row was created.
func (r *PostgresFollowRepository) CreateRequestIfAbsent(req *models.FollowRequest) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "requester_id"}, {Name: "target_id"}},
		DoNothing: true,
	}).Create(req)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresFollowRepository) GetRequestByIDAndTarget(requestID, targetID uint) (*models.FollowRequest, error) {
	var req models.FollowRequest
	if err := r.db.Where("id = ? AND target_id = ?", requestID, targetID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PostgresFollowRepository) GetRequestByPair(requesterID, targetID uint) (*models.FollowRequest, error) {
	var req models.FollowRequest
	if err := r.db.Where("requester_id = ? AND target_id = ?", requesterID, targetID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PostgresFollowRepository) SetRequestStatus(requestID uint, status models.RequestStatus, respondedAt time.Time) error {
	return r.db.Model(&models.FollowRequest{}).
		Where("id = ?", requestID).
		Updates(map[string]interface{}{"status": status, "responded_at": respondedAt}).Error
}

// ResetRequestPending reopens a terminal request row for a fresh request
// cycle. The guard on status keeps a concurrent reset from clobbering a
// request that is still pending.
func (r *PostgresFollowRepository) ResetRequestPending(requestID uint) error {
	return r.db.Model(&models.FollowRequest{}).
		Where("id = ? AND status <> ?", requestID, models.RequestPending).
		Updates(map[string]interface{}{
			"status":       models.RequestPending,
			"requested_at": time.Now(),
			"responded_at": nil,
		}).Error
}

func (r *PostgresFollowRepository) ListPendingByTarget(targetID uint) ([]models.FollowRequest, error) {
	var reqs []models.FollowRequest
	err := r.db.Where("target_id = ? AND status = ?", targetID, models.RequestPending).
		Order("requested_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// CreateFollowIfAbsent inserts the follow edge, ignoring a duplicate pair.
func (r *PostgresFollowRepository) CreateFollowIfAbsent(follow *models.Following) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followed_id"}},
		DoNothing: true,
	}).Create(follow)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteFollow removes the edge and reports whether a row was actually deleted.
func (r *PostgresFollowRepository) DeleteFollow(followerID, followedID uint) (bool, error) {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Following{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Following{}).Where("follower_id = ? AND followed_id = ?", followerID, followedID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Following{}).Where("followed_id = ?", userID).Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Following{}).Where("follower_id = ?", userID).Pluck("followed_id", &ids).Error
	return ids, err
}

func (r *PostgresFollowRepository) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Following{}).Where("followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Following{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
