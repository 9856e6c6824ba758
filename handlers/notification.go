package handlers

import (
	"net/http"

	"eventease/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves a user's notification feed.
type NotificationHandler struct {
	Svc    notification.NotificationService
	Logger *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

// ListNotifications handles GET /api/notifications.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.Svc.ListForUser(callerID(c))
	if err != nil {
		h.Logger.Error("ListNotifications: failed to fetch notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationRead handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Param("id"), callerID(c)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
