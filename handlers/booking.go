package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	bookingRepo "eventease/database/repository/booking"
	"eventease/models"
	"eventease/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// respondBookingError maps lifecycle errors onto HTTP status codes.
func respondBookingError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound), errors.Is(err, booking.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, bookingRepo.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(op+": unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.BookingSvc.CreateBooking(callerID(c), input)
	if err != nil {
		respondBookingError(c, h.Logger, "CreateBooking", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": view})
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	views, total, err := h.BookingSvc.ListBookings(callerID(c), page, limit)
	if err != nil {
		respondBookingError(c, h.Logger, "ListBookings", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": views,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	view, err := h.BookingSvc.GetBooking(c.Param("id"), callerID(c))
	if err != nil {
		respondBookingError(c, h.Logger, "GetBooking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": view})
}

// UpdateBooking handles PATCH /api/bookings/:id/update. The patch shape is
// strict: unknown fields are rejected.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var patch models.BookingUpdate
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.BookingSvc.ApplyUpdate(c.Param("id"), callerID(c), patch)
	if err != nil {
		respondBookingError(c, h.Logger, "UpdateBooking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": view})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	view, err := h.BookingSvc.CancelBooking(c.Param("id"), callerID(c))
	if err != nil {
		respondBookingError(c, h.Logger, "CancelBooking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": view})
}

// CompleteBooking handles POST /api/admin/bookings/:id/complete.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	view, err := h.BookingSvc.CompleteBooking(c.Param("id"))
	if err != nil {
		respondBookingError(c, h.Logger, "CompleteBooking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": view})
}
