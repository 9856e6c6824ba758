package handlers

import (
	"errors"
	"net/http"

	"eventease/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	UserSvc user.UserService
	Logger  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{UserSvc: svc, Logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserSvc.Register(input)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Register: registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.UserSvc.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Login: authentication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
