package notification

import "eventease/models"

// NotificationService persists notifications and pushes them to the user's
// registered devices on a best-effort basis.
type NotificationService interface {
	Notify(userID, ntype, message string, data map[string]any) error
	ListForUser(userID string) ([]models.Notification, error)
	MarkRead(id, userID string) error
}
