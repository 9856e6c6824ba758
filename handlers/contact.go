package handlers

import (
	"net/http"

	contactRepo "eventease/database/repository/contact"
	"eventease/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	Repo   contactRepo.ContactRepository
	Logger *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(repo contactRepo.ContactRepository, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Repo: repo, Logger: logger}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	msg := &models.Contact{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := h.Repo.Create(msg); err != nil {
		h.Logger.Error("Submit: failed to save contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// List handles GET /api/admin/contacts.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.Repo.List()
	if err != nil {
		h.Logger.Error("List: failed to fetch contact messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
