package handlers

import (
	"net/http"

	"eventease/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment initiation and verification.
type PaymentHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc booking.BookingService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{BookingSvc: svc, Logger: logger}
}

// CreateOrder handles POST /api/payment/create-order.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var input struct {
		BookingID string  `json:"bookingId" binding:"required"`
		Amount    float64 `json:"amount" binding:"required"`
		Method    string  `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	order, err := h.BookingSvc.InitiatePayment(input.BookingID, callerID(c), input.Amount, input.Method)
	if err != nil {
		respondBookingError(c, h.Logger, "CreateOrder", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// VerifyPayment handles POST /api/payment/verify. Settlement runs behind
// the same ownership check as the other booking mutations.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
		PaymentID string `json:"paymentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.BookingSvc.VerifyPayment(input.BookingID, callerID(c), input.PaymentID)
	if err != nil {
		respondBookingError(c, h.Logger, "VerifyPayment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": view})
}
