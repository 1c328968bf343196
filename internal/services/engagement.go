package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"gorm.io/gorm"
)

// EngagementService orchestrates the user-facing engagement actions: each one
// records its log entry, notifies the affected party, and re-evaluates the
// acting user's badges, all within a single request.
type EngagementService struct {
	db     *gorm.DB
	posts  repositories.PostRepository
	badges *BadgeService
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(db *gorm.DB, posts repositories.PostRepository, badges *BadgeService) *EngagementService {
	return &EngagementService{db: db, posts: posts, badges: badges}
}

// CreatePost stores the post and records the create_post action.
func (s *EngagementService) CreatePost(ctx context.Context, userID uint, req models.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		AuthorID: userID,
		Content:  req.Content,
		Category: req.Category,
		PromptID: req.PromptID,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	if err := appendAction(s.db, &models.UserAction{
		UserID:     userID,
		ActionType: models.ActionCreatePost,
		ActionData: post.ID.Hex(),
	}); err != nil {
		return nil, err
	}
	if _, err := s.badges.AwardEligibleBadges(userID); err != nil {
		return nil, err
	}
	return post, nil
}

// Feed returns posts authored by the users the given user follows, newest
// first. A user following nobody gets an empty feed.
func (s *EngagementService) Feed(ctx context.Context, userID uint, skip, limit int64) ([]models.Post, error) {
	followingIDs, err := repositories.NewPostgresFollowRepository(s.db).GetFollowingIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.posts.GetPostsByAuthors(ctx, followingIDs, skip, limit)
}

// LikePost likes the post on behalf of the user. It returns false when the
// post does not exist or the user already liked it. The post author is
// notified unless they liked their own post.
func (s *EngagementService) LikePost(ctx context.Context, userID uint, postID string) (bool, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return false, nil
		}
		return false, err
	}

	var ok bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		created, err := repositories.NewPostgresLikeRepository(tx).CreateLikeIfAbsent(&models.Like{
			PostID: postID,
			UserID: userID,
		})
		if err != nil {
			return err
		}
		if !created {
			return nil // already liked
		}
		if err := appendAction(tx, &models.UserAction{
			UserID:     userID,
			ActionType: models.ActionLikePost,
			ActionData: postID,
		}); err != nil {
			return err
		}
		if post.AuthorID != userID {
			likerName, err := repositories.NewPostgresUserRepository(tx).UsernameByID(userID)
			if err != nil {
				return err
			}
			message := fmt.Sprintf("%s liked your post", likerName)
			if err := dispatchNotification(tx, post.AuthorID, models.NotificationLike, message, postID); err != nil {
				return err
			}
		}
		ok = true
		return nil
	})
	if err != nil || !ok {
		return ok, err
	}

	if err := s.posts.IncrementLikesCount(ctx, postID); err != nil {
		return true, err
	}
	if _, err := s.badges.AwardEligibleBadges(userID); err != nil {
		return true, err
	}
	return true, nil
}

// UnlikePost removes the like and reports whether one existed. The counter is
// only decremented when a row was actually removed.
func (s *EngagementService) UnlikePost(ctx context.Context, userID uint, postID string) (bool, error) {
	removed, err := repositories.NewPostgresLikeRepository(s.db).DeleteLike(postID, userID)
	if err != nil || !removed {
		return removed, err
	}
	return true, s.posts.DecrementLikesCount(ctx, postID)
}

// CommentPost creates the comment and notifies the post author unless they
// commented on their own post. Returns nil when the post does not exist.
func (s *EngagementService) CommentPost(ctx context.Context, userID uint, postID, content string) (*models.Comment, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, nil
		}
		return nil, err
	}

	comment := &models.Comment{PostID: postID, UserID: userID, Content: content}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresCommentRepository(tx).CreateComment(comment); err != nil {
			return err
		}
		if err := appendAction(tx, &models.UserAction{
			UserID:     userID,
			ActionType: models.ActionCommentPost,
			ActionData: postID,
		}); err != nil {
			return err
		}
		if post.AuthorID != userID {
			commenterName, err := repositories.NewPostgresUserRepository(tx).UsernameByID(userID)
			if err != nil {
				return err
			}
			message := fmt.Sprintf("%s commented on your post", commenterName)
			if err := dispatchNotification(tx, post.AuthorID, models.NotificationComment, message, postID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.posts.IncrementCommentsCount(ctx, postID); err != nil {
		return comment, err
	}
	if _, err := s.badges.AwardEligibleBadges(userID); err != nil {
		return comment, err
	}
	return comment, nil
}

// SharePost records the share action. Sharing produces no notification.
// Returns false when the post does not exist.
func (s *EngagementService) SharePost(ctx context.Context, userID uint, postID string) (bool, error) {
	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := appendAction(s.db, &models.UserAction{
		UserID:     userID,
		ActionType: models.ActionSharePost,
		ActionData: postID,
	}); err != nil {
		return false, err
	}
	if _, err := s.badges.AwardEligibleBadges(userID); err != nil {
		return true, err
	}
	return true, nil
}

// CreateEvent stores the event and records both the create_event and
// organize_event actions for the organizer.
func (s *EngagementService) CreateEvent(userID uint, req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Name:            req.Name,
		Itinerary:       req.Itinerary,
		Duration:        req.Duration,
		Date:            req.Date,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		OrganizerID:     userID,
		GameType:        req.GameType,
		GameRules:       req.GameRules,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewPostgresEventRepository(tx).CreateEvent(event); err != nil {
			return err
		}
		for _, actionType := range []models.ActionType{models.ActionCreateEvent, models.ActionOrganizeEvent} {
			if err := appendAction(tx, &models.UserAction{
				UserID:     userID,
				ActionType: actionType,
				TargetID:   &event.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.badges.AwardEligibleBadges(userID); err != nil {
		return event, err
	}
	return event, nil
}

// JoinEvent registers the user for the event. It returns false when the event
// does not exist, is full, or the user is already registered. The organizer
// is notified unless they joined their own event.
func (s *EngagementService) JoinEvent(userID, eventID uint) (bool, error) {
	eventRepo := repositories.NewPostgresEventRepository(s.db)
	event, err := eventRepo.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if event.MaxParticipants > 0 {
		count, err := eventRepo.CountParticipants(eventID)
		if err != nil {
			return false, err
		}
		if count >= int64(event.MaxParticipants) {
			return false, nil
		}
	}

	var ok bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		created, err := repositories.NewPostgresEventRepository(tx).AddParticipantIfAbsent(&models.EventParticipant{
			EventID: eventID,
			UserID:  userID,
		})
		if err != nil {
			return err
		}
		if !created {
			return nil // already registered
		}
		if err := appendAction(tx, &models.UserAction{
			UserID:     userID,
			ActionType: models.ActionParticipateEvent,
			TargetID:   &eventID,
		}); err != nil {
			return err
		}
		if event.OrganizerID != userID {
			joinerName, err := repositories.NewPostgresUserRepository(tx).UsernameByID(userID)
			if err != nil {
				return err
			}
			message := fmt.Sprintf("%s joined your event", joinerName)
			if err := dispatchNotification(tx, event.OrganizerID, models.NotificationEventJoin, message, fmt.Sprint(eventID)); err != nil {
				return err
			}
		}
		ok = true
		return nil
	})
	if err != nil || !ok {
		return ok, err
	}

	if _, err := s.badges.AwardEligibleBadges(userID); err != nil {
		return true, err
	}
	return true, nil
}
