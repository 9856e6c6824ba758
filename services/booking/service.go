package booking

import (
	"crypto/rand"
	"fmt"
	"math"

	bookingRepo "eventease/database/repository/booking"
	venueRepo "eventease/database/repository/venue"
	"eventease/models"
	"eventease/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pricing rates applied when a booking is created.
const (
	taxRate           = 0.18
	serviceChargeRate = 0.05
)

// DefaultBookingService is the production BookingService implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Venues   venueRepo.VenueRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomUpperAlnum(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in serious trouble.
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	for i := range buf {
		buf[i] = referenceAlphabet[int(buf[i])%len(referenceAlphabet)]
	}
	return string(buf)
}

// newReference builds a human-readable booking reference, e.g. EVB-7K2Q9X4A.
func newReference() string {
	return "EVB-" + randomUpperAlnum(8)
}

// CreateBooking snapshots pricing from the venue and persists a pending booking.
func (s *DefaultBookingService) CreateBooking(userID string, input models.BookingInput) (*models.BookingView, error) {
	venue, err := s.Venues.GetByID(input.VenueID)
	if err != nil {
		s.Logger.Error("CreateBooking: failed to fetch venue", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch venue: %w", err)
	}
	if venue == nil || !venue.Active {
		return nil, ErrVenueNotFound
	}

	subtotal := venue.BasePrice
	pricing := models.Pricing{
		Subtotal:       subtotal,
		Taxes:          round2(subtotal * taxRate),
		ServiceCharges: round2(subtotal * serviceChargeRate),
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		Reference:       newReference(),
		UserID:          userID,
		VenueID:         venue.ID,
		EventDate:       input.EventDate,
		GuestCount:      input.GuestCount,
		CustomerDetails: input.CustomerDetails,
		Status:          models.BookingStatusPending,
		Pricing:         pricing,
		Payment: models.Payment{
			Status:    models.PaymentStatusPending,
			DueAmount: pricing.Total(),
		},
	}
	b.AppendTimeline("Booking created", fmt.Sprintf("Booking %s created for %s", b.Reference, venue.Name))

	if err := s.Repo.Create(b); err != nil {
		s.Logger.Error("CreateBooking: failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	view := b.View()
	return &view, nil
}

// GetBooking returns a booking, enforcing that the caller owns it.
func (s *DefaultBookingService) GetBooking(bookingID, callerID string) (*models.BookingView, error) {
	b, err := s.fetchOwned(bookingID, callerID)
	if err != nil {
		return nil, err
	}
	view := b.View()
	return &view, nil
}

// ListBookings returns a page of the user's bookings plus the total count.
func (s *DefaultBookingService) ListBookings(userID string, page, limit int) ([]models.BookingView, int64, error) {
	bookings, err := s.Repo.ListByUser(userID, page, limit)
	if err != nil {
		s.Logger.Error("ListBookings: failed to fetch bookings", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	total, err := s.Repo.CountByUser(userID)
	if err != nil {
		s.Logger.Error("ListBookings: failed to count bookings", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return models.Views(bookings), total, nil
}

// CancelBooking sets the booking to cancelled. Owner-gated.
func (s *DefaultBookingService) CancelBooking(bookingID, callerID string) (*models.BookingView, error) {
	b, err := s.fetchOwned(bookingID, callerID)
	if err != nil {
		return nil, err
	}

	b.Status = models.BookingStatusCancelled
	b.AppendTimeline("Booking cancelled", "Booking was cancelled by the customer")

	if err := s.Repo.UpdateVersioned(b); err != nil {
		return nil, err
	}

	view := b.View()
	return &view, nil
}

// CompleteBooking sets the booking to completed. Admin-gated at the route.
func (s *DefaultBookingService) CompleteBooking(bookingID string) (*models.BookingView, error) {
	b, err := s.fetch(bookingID)
	if err != nil {
		return nil, err
	}

	b.Status = models.BookingStatusCompleted
	b.AppendTimeline("Booking completed", "Booking was marked completed")

	if err := s.Repo.UpdateVersioned(b); err != nil {
		return nil, err
	}

	view := b.View()
	return &view, nil
}

func (s *DefaultBookingService) fetch(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		s.Logger.Error("failed to fetch booking", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *DefaultBookingService) fetchOwned(bookingID, callerID string) (*models.Booking, error) {
	b, err := s.fetch(bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != callerID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

func (s *DefaultBookingService) notify(userID, ntype, message string, data map[string]any) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(userID, ntype, message, data); err != nil {
		s.Logger.Warn("notification delivery failed", zap.Error(err))
	}
}
