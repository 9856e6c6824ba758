package handlers

import (
	"errors"
	"net/http"
	"strconv"

	reviewRepo "eventease/database/repository/review"
	"eventease/models"
	"eventease/services/venue"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VenueHandler serves venue browsing, admin management and reviews.
type VenueHandler struct {
	VenueSvc venue.VenueService
	Logger   *zap.Logger
}

// NewVenueHandler creates a new VenueHandler.
func NewVenueHandler(svc venue.VenueService, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{VenueSvc: svc, Logger: logger}
}

// ListVenues handles GET /api/venues.
func (h *VenueHandler) ListVenues(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	venues, err := h.VenueSvc.List(c.Query("city"), c.Query("category"), page, limit)
	if err != nil {
		h.Logger.Error("ListVenues: failed to fetch venues", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch venues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"venues": venues, "page": page, "limit": limit})
}

// GetVenue handles GET /api/venues/:id.
func (h *VenueHandler) GetVenue(c *gin.Context) {
	v, err := h.VenueSvc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, venue.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("GetVenue: failed to fetch venue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch venue"})
		return
	}

	c.JSON(http.StatusOK, v)
}

// CreateVenue handles POST /api/admin/venues.
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var input models.Venue
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	v, err := h.VenueSvc.Create(input)
	if err != nil {
		h.Logger.Error("CreateVenue: failed to create venue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create venue"})
		return
	}

	c.JSON(http.StatusCreated, v)
}

// UpdateVenue handles PUT /api/admin/venues/:id.
func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	var input models.Venue
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	v, err := h.VenueSvc.Update(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, venue.ErrVenueNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("UpdateVenue: failed to update venue", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update venue"})
		return
	}

	c.JSON(http.StatusOK, v)
}

// CreateReview handles POST /api/venues/:id/reviews.
func (h *VenueHandler) CreateReview(c *gin.Context) {
	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	rev, err := h.VenueSvc.AddReview(callerID(c), c.Param("id"), input.Rating, input.Comment)
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, venue.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, reviewRepo.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("CreateReview: failed to create review", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		}
		return
	}

	c.JSON(http.StatusCreated, rev)
}

// ListReviews handles GET /api/venues/:id/reviews.
func (h *VenueHandler) ListReviews(c *gin.Context) {
	reviews, err := h.VenueSvc.ListReviews(c.Param("id"))
	if err != nil {
		h.Logger.Error("ListReviews: failed to fetch reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
