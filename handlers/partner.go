package handlers

import (
	"errors"
	"net/http"

	partnerRepo "eventease/database/repository/partner"
	"eventease/models"
	"eventease/services/partner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartnerHandler serves vendor application endpoints.
type PartnerHandler struct {
	Svc    partner.PartnerService
	Logger *zap.Logger
}

// NewPartnerHandler creates a new PartnerHandler.
func NewPartnerHandler(svc partner.PartnerService, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{Svc: svc, Logger: logger}
}

// Apply handles POST /api/partners/apply.
func (h *PartnerHandler) Apply(c *gin.Context) {
	var input partner.ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	app, err := h.Svc.Apply(input)
	if err != nil {
		if errors.Is(err, partnerRepo.ErrDuplicateApplication) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Apply: failed to submit application", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit application"})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// List handles GET /api/admin/partners.
func (h *PartnerHandler) List(c *gin.Context) {
	apps, err := h.Svc.List(c.Query("status"))
	if err != nil {
		h.Logger.Error("List: failed to fetch applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// SetStatus handles POST /api/admin/partners/:id/status.
func (h *PartnerHandler) SetStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Status != models.PartnerStatusApproved && input.Status != models.PartnerStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	app, err := h.Svc.SetStatus(c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, partner.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("SetStatus: failed to update application", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update application"})
		return
	}

	c.JSON(http.StatusOK, app)
}
