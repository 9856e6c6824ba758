package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "eventease/database/repository/notification"
	userRepo "eventease/database/repository/user"
	"eventease/models"
	"eventease/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production NotificationService.
type DefaultNotificationService struct {
	Repo   notificationRepo.NotificationRepository
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

// Notify persists the notification and attempts a push to each of the
// user's device tokens. Push failures are logged, never surfaced.
func (s *DefaultNotificationService) Notify(userID, ntype, message string, data map[string]any) error {
	n := &models.Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Type:    ntype,
		Message: message,
		Data:    data,
	}
	if err := s.Repo.Create(n); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	s.push(userID, ntype, message)
	return nil
}

func (s *DefaultNotificationService) push(userID, ntype, message string) {
	if utils.FCMClient == nil {
		return
	}

	usr, err := s.Users.GetByID(userID)
	if err != nil || usr == nil || len(usr.DeviceTokens) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, token := range usr.DeviceTokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: "Eventease",
				Body:  message,
			},
			Data: map[string]string{"type": ntype},
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			s.Logger.Warn("push delivery failed", zap.String("userID", userID), zap.Error(err))
		}
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(userID)
}

// MarkRead flags a notification as read, scoped to its owner.
func (s *DefaultNotificationService) MarkRead(id, userID string) error {
	return s.Repo.MarkRead(id, userID)
}
