package handlers

import (
	"errors"
	"net/http"

	"eventease/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile endpoints.
type UserHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{UserSvc: svc, Logger: logger}
}

// GetProfile handles GET /api/users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.UserSvc.GetProfile(callerID(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("GetProfile: failed to fetch profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var update user.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	profile, err := h.UserSvc.UpdateProfile(callerID(c), update)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("UpdateProfile: failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
