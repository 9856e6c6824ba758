package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler so route registration takes
// a single dependency.
type HandlerBundle struct {
	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// User endpoints.
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Venue endpoints.
	ListVenuesHandler  gin.HandlerFunc
	GetVenueHandler    gin.HandlerFunc
	CreateVenueHandler gin.HandlerFunc
	UpdateVenueHandler gin.HandlerFunc

	// Review endpoints.
	CreateReviewHandler gin.HandlerFunc
	ListReviewsHandler  gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler   gin.HandlerFunc
	ListBookingsHandler    gin.HandlerFunc
	GetBookingHandler      gin.HandlerFunc
	UpdateBookingHandler   gin.HandlerFunc
	CancelBookingHandler   gin.HandlerFunc
	CompleteBookingHandler gin.HandlerFunc

	// Payment endpoints.
	CreateOrderHandler   gin.HandlerFunc
	VerifyPaymentHandler gin.HandlerFunc

	// Promo endpoint.
	ValidatePromoHandler gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler gin.HandlerFunc
	MarkNotificationHandler  gin.HandlerFunc

	// Partner endpoints.
	PartnerApplyHandler     gin.HandlerFunc
	ListPartnersHandler     gin.HandlerFunc
	SetPartnerStatusHandler gin.HandlerFunc

	// Contact endpoints.
	ContactHandler      gin.HandlerFunc
	ListContactsHandler gin.HandlerFunc

	// Catalog endpoints.
	CatalogHandler *CatalogHandler

	// Admin stats endpoint.
	AdminStatsHandler gin.HandlerFunc
}

// callerID returns the authenticated user's id set by the auth middleware.
func callerID(c *gin.Context) string {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
