package booking

import "eventease/models"

// PaymentOrder is the synthesized order returned by InitiatePayment. It is
// not persisted beyond the booking's timeline note.
type PaymentOrder struct {
	OrderID   string  `json:"orderId"`
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
}

// BookingService covers the booking lifecycle: creation, owner-gated
// mutation, payment initiation and settlement, and status promotion. Every
// mutating operation appends exactly one timeline entry.
type BookingService interface {
	CreateBooking(userID string, input models.BookingInput) (*models.BookingView, error)
	GetBooking(bookingID, callerID string) (*models.BookingView, error)
	ListBookings(userID string, page, limit int) ([]models.BookingView, int64, error)
	ApplyUpdate(bookingID, callerID string, patch models.BookingUpdate) (*models.BookingView, error)
	CancelBooking(bookingID, callerID string) (*models.BookingView, error)
	CompleteBooking(bookingID string) (*models.BookingView, error)
	InitiatePayment(bookingID, callerID string, amount float64, method string) (*PaymentOrder, error)
	VerifyPayment(bookingID, callerID, paymentID string) (*models.BookingView, error)
}
