package routes

import (
	"net/http"
	"time"

	"eventease/handlers"
	"eventease/middleware"
	"eventease/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
	}
}

// RegisterVenueRoutes registers public venue browsing and review endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("", hb.ListVenuesHandler)
		api.GET("/:id", hb.GetVenueHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)

		// Reviews require an authenticated author.
		api.POST("/:id/reviews", middleware.JWTAuthMiddleware(), hb.CreateReviewHandler)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("", hb.CreateBookingHandler)
		bookingGroup.GET("", hb.ListBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
		bookingGroup.PATCH("/:id/update", hb.UpdateBookingHandler)
		bookingGroup.POST("/:id/cancel", hb.CancelBookingHandler)
	}

	// Payment settlement runs behind the same auth as the other booking
	// mutations.
	paymentGroup := r.Group("/api/payment")
	{
		paymentGroup.Use(middleware.JWTAuthMiddleware())
		paymentGroup.POST("/create-order", hb.CreateOrderHandler)
		paymentGroup.POST("/verify", hb.VerifyPaymentHandler)
	}

	r.POST("/api/promo/validate", hb.ValidatePromoHandler)
}

// RegisterNotificationRoutes registers the notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListNotificationsHandler)
		api.POST("/:id/read", hb.MarkNotificationHandler)
	}
}

// RegisterPartnerRoutes registers the public partner application endpoint.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/partners/apply", hb.PartnerApplyHandler)
	r.POST("/api/contact", hb.ContactHandler)
}

// RegisterCatalogRoutes registers the static service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/decoration", hb.CatalogHandler.Decoration)
		api.GET("/photography", hb.CatalogHandler.Photography)
		api.GET("/entertainment", hb.CatalogHandler.Entertainment)
		api.GET("/extras", hb.CatalogHandler.Extras)
		api.GET("/packages", hb.CatalogHandler.Packages)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
		adminGroup.GET("/stats", hb.AdminStatsHandler)
		adminGroup.POST("/venues", hb.CreateVenueHandler)
		adminGroup.PUT("/venues/:id", hb.UpdateVenueHandler)
		adminGroup.POST("/bookings/:id/complete", hb.CompleteBookingHandler)
		adminGroup.GET("/partners", hb.ListPartnersHandler)
		adminGroup.POST("/partners/:id/status", hb.SetPartnerStatusHandler)
		adminGroup.GET("/contacts", hb.ListContactsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterVenueRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterPartnerRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
