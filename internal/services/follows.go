package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService runs the approval-gated follow workflow: requests move from
// pending to accepted or rejected, and an accepted request materializes the
// follow edge. Multi-step transitions run inside one transaction so a partial
// accept is never left behind.
type FollowService struct {
	db     *gorm.DB
	badges *BadgeService
}

// NewFollowService creates a new FollowService
func NewFollowService(db *gorm.DB, badges *BadgeService) *FollowService {
	return &FollowService{db: db, badges: badges}
}

// RequestFollow creates a pending follow request and notifies the target.
// It returns false when a request for the pair is already pending, or when
// requester and target are the same user. A pair whose previous request ended
// in a terminal state is reset back to pending for a fresh cycle.
func (s *FollowService) RequestFollow(requesterID, targetID uint) (bool, error) {
	if requesterID == targetID {
		return false, nil
	}

	var ok bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewPostgresFollowRepository(tx)
		created, err := repo.CreateRequestIfAbsent(&models.FollowRequest{
			RequesterID: requesterID,
			TargetID:    targetID,
			Status:      models.RequestPending,
		})
		if err != nil {
			return err
		}
		if !created {
			existing, err := repo.GetRequestByPair(requesterID, targetID)
			if err != nil {
				return err
			}
			if existing.Status == models.RequestPending {
				return nil // duplicate request, soft failure
			}
			if err := repo.ResetRequestPending(existing.ID); err != nil {
				return err
			}
		}

		requesterName, err := repositories.NewPostgresUserRepository(tx).UsernameByID(requesterID)
		if err != nil {
			return err
		}
		message := fmt.Sprintf("%s sent you a follow request", requesterName)
		if err := dispatchNotification(tx, targetID, models.NotificationFollowRequest, message, fmt.Sprint(requesterID)); err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

// Respond accepts or rejects a pending request. The target must own the
// request; otherwise it returns false untouched. Accepting materializes the
// follow edge, records the follow action for the requester, and notifies the
// requester. Rejection is silent.
func (s *FollowService) Respond(requestID, targetID uint, accept bool) (bool, error) {
	var ok bool
	var requesterID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewPostgresFollowRepository(tx)
		req, err := repo.GetRequestByIDAndTarget(requestID, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if req.Status != models.RequestPending {
			return nil
		}

		now := time.Now()
		if !accept {
			if err := repo.SetRequestStatus(req.ID, models.RequestRejected, now); err != nil {
				return err
			}
			ok = true
			return nil
		}

		// Duplicate edge insert is ignored in case one somehow exists.
		if _, err := repo.CreateFollowIfAbsent(&models.Following{
			FollowerID: req.RequesterID,
			FollowedID: req.TargetID,
		}); err != nil {
			return err
		}
		if err := appendAction(tx, &models.UserAction{
			UserID:     req.RequesterID,
			ActionType: models.ActionFollowUser,
			TargetID:   &req.TargetID,
		}); err != nil {
			return err
		}
		if err := repo.SetRequestStatus(req.ID, models.RequestAccepted, now); err != nil {
			return err
		}

		targetName, err := repositories.NewPostgresUserRepository(tx).UsernameByID(targetID)
		if err != nil {
			return err
		}
		message := fmt.Sprintf("%s accepted your follow request", targetName)
		if err := dispatchNotification(tx, req.RequesterID, models.NotificationFollowAccept, message, fmt.Sprint(targetID)); err != nil {
			return err
		}

		requesterID = req.RequesterID
		ok = true
		return nil
	})
	if err != nil || !ok || !accept {
		return ok, err
	}

	// The recorded follow action may have completed a badge.
	if _, err := s.badges.AwardEligibleBadges(requesterID); err != nil {
		return true, err
	}
	return true, nil
}

// Unfollow removes the follow edge and reports whether one existed. The
// underlying accepted request is left alone; a later follow starts a fresh
// request cycle.
func (s *FollowService) Unfollow(followerID, followedID uint) (bool, error) {
	return repositories.NewPostgresFollowRepository(s.db).DeleteFollow(followerID, followedID)
}

// IsFollowing reports whether the follow edge exists.
func (s *FollowService) IsFollowing(followerID, followedID uint) (bool, error) {
	return repositories.NewPostgresFollowRepository(s.db).IsFollowing(followerID, followedID)
}

// RequestState returns the request row for the pair, or nil when absent.
func (s *FollowService) RequestState(requesterID, targetID uint) (*models.FollowRequest, error) {
	req, err := repositories.NewPostgresFollowRepository(s.db).GetRequestByPair(requesterID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

// PendingRequests lists requests awaiting the target's decision, newest first.
func (s *FollowService) PendingRequests(targetID uint) ([]models.FollowRequest, error) {
	return repositories.NewPostgresFollowRepository(s.db).ListPendingByTarget(targetID)
}

// FollowerIDs returns the IDs of users following the given user.
func (s *FollowService) FollowerIDs(userID uint) ([]uint, error) {
	return repositories.NewPostgresFollowRepository(s.db).GetFollowerIDs(userID)
}

// FollowingIDs returns the IDs of users the given user follows.
func (s *FollowService) FollowingIDs(userID uint) ([]uint, error) {
	return repositories.NewPostgresFollowRepository(s.db).GetFollowingIDs(userID)
}
