package services

import (
	"errors"
	"fmt"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"gorm.io/gorm"
)

// NotificationService creates and serves user-scoped notification records.
// Delivery is pull-only: writes are durable and consumed later by the client.
// Repeated identical events produce repeated notifications; there is no
// suppression or deduplication here.
type NotificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify durably records a notification for the user. Fire-and-forget: there
// is no delivery guarantee beyond the write.
func (s *NotificationService) Notify(userID uint, typ models.NotificationType, message, relatedID string) error {
	return dispatchNotification(s.db, userID, typ, message, relatedID)
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(userID uint, unreadOnly bool) ([]models.Notification, error) {
	return repositories.NewPostgresNotificationRepository(s.db).ListByUser(userID, unreadOnly)
}

// UnreadCount returns the number of unread notifications for the user.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return repositories.NewPostgresNotificationRepository(s.db).GetUnreadCount(userID)
}

// MarkRead flips a single notification to read. It returns false without
// mutating anything when the notification does not exist or belongs to a
// different user. Marking an already-read notification is a no-op success.
func (s *NotificationService) MarkRead(notificationID, userID uint) (bool, error) {
	repo := repositories.NewPostgresNotificationRepository(s.db)
	n, err := repo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if n.UserID != userID {
		return false, nil
	}
	if err := repo.MarkAsRead(notificationID); err != nil {
		return false, err
	}
	return true, nil
}

// MarkAllRead flips every unread notification for the user. Idempotent.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return repositories.NewPostgresNotificationRepository(s.db).MarkAllAsRead(userID)
}

// dispatchNotification validates the type and writes the record through the
// given handle, which may be a transaction. Every notification-producing
// workflow funnels through here.
func dispatchNotification(db *gorm.DB, userID uint, typ models.NotificationType, message, relatedID string) error {
	if !typ.IsValid() {
		return fmt.Errorf("unknown notification type %q", typ)
	}
	return repositories.NewPostgresNotificationRepository(db).CreateNotification(&models.Notification{
		UserID:    userID,
		Type:      typ,
		Message:   message,
		RelatedID: relatedID,
	})
}
