package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventease/config"
	"eventease/database"
	bookingRepoPkg "eventease/database/repository/booking"
	contactRepoPkg "eventease/database/repository/contact"
	notificationRepoPkg "eventease/database/repository/notification"
	partnerRepoPkg "eventease/database/repository/partner"
	reviewRepoPkg "eventease/database/repository/review"
	userRepoPkg "eventease/database/repository/user"
	venueRepoPkg "eventease/database/repository/venue"
	"eventease/handlers"
	"eventease/middleware"
	"eventease/routes"
	"eventease/services/admin"
	"eventease/services/booking"
	"eventease/services/notification"
	"eventease/services/partner"
	"eventease/services/user"
	"eventease/services/venue"
	"eventease/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	partnerRepo := partnerRepoPkg.NewMongoPartnerRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:   notificationRepo,
		Users:  userRepo,
		Logger: logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Venues:   venueRepo,
		Notifier: notificationService,
		Logger:   logger,
	}

	venueService := &venue.DefaultVenueService{
		Repo:    venueRepo,
		Reviews: reviewRepo,
		Logger:  logger,
	}

	partnerService := &partner.DefaultPartnerService{
		Repo:   partnerRepo,
		Logger: logger,
	}

	statsService := &admin.DefaultStatsService{
		Bookings: bookingRepo,
		Users:    userRepo,
		Venues:   venueRepo,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	venueHandler := handlers.NewVenueHandler(venueService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	paymentHandler := handlers.NewPaymentHandler(bookingService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)
	partnerHandler := handlers.NewPartnerHandler(partnerService, logger)
	contactHandler := handlers.NewContactHandler(contactRepo, logger)
	adminHandler := handlers.NewAdminHandler(statsService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterHandler: authHandler.Register,
		LoginHandler:    authHandler.Login,

		// User endpoints.
		GetProfileHandler:    userHandler.GetProfile,
		UpdateProfileHandler: userHandler.UpdateProfile,

		// Venue endpoints.
		ListVenuesHandler:  venueHandler.ListVenues,
		GetVenueHandler:    venueHandler.GetVenue,
		CreateVenueHandler: venueHandler.CreateVenue,
		UpdateVenueHandler: venueHandler.UpdateVenue,

		// Review endpoints.
		CreateReviewHandler: venueHandler.CreateReview,
		ListReviewsHandler:  venueHandler.ListReviews,

		// Booking endpoints.
		CreateBookingHandler:   bookingHandler.CreateBooking,
		ListBookingsHandler:    bookingHandler.ListBookings,
		GetBookingHandler:      bookingHandler.GetBooking,
		UpdateBookingHandler:   bookingHandler.UpdateBooking,
		CancelBookingHandler:   bookingHandler.CancelBooking,
		CompleteBookingHandler: bookingHandler.CompleteBooking,

		// Payment endpoints.
		CreateOrderHandler:   paymentHandler.CreateOrder,
		VerifyPaymentHandler: paymentHandler.VerifyPayment,

		// Promo endpoint.
		ValidatePromoHandler: handlers.ValidatePromoHandler,

		// Notification endpoints.
		ListNotificationsHandler: notificationHandler.ListNotifications,
		MarkNotificationHandler:  notificationHandler.MarkNotificationRead,

		// Partner endpoints.
		PartnerApplyHandler:     partnerHandler.Apply,
		ListPartnersHandler:     partnerHandler.List,
		SetPartnerStatusHandler: partnerHandler.SetStatus,

		// Contact endpoints.
		ContactHandler:      contactHandler.Submit,
		ListContactsHandler: contactHandler.List,

		// Catalog endpoints.
		CatalogHandler: handlers.NewCatalogHandler(),

		// Admin stats endpoint.
		AdminStatsHandler: adminHandler.GetStats,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.Client())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	database.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
