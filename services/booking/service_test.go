package booking

import (
	"regexp"
	"testing"

	bookingRepo "eventease/database/repository/booking"
	"eventease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	// failNextUpdate makes the next UpdateVersioned return ErrVersionConflict.
	failNextUpdate bool
	updateCalls    int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	b.Version = 1
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) UpdateVersioned(b *models.Booking) error {
	r.updateCalls++
	if r.failNextUpdate {
		r.failNextUpdate = false
		return bookingRepo.ErrVersionConflict
	}
	b.Version++
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) ListByUser(userID string, page, limit int) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CountByUser(userID string) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) CountByStatus() (map[string]int64, error) {
	out := make(map[string]int64)
	for _, b := range r.bookings {
		out[b.Status]++
	}
	return out, nil
}

func (r *fakeBookingRepo) TotalRevenue() (float64, error) {
	var total float64
	for _, b := range r.bookings {
		if b.Payment.Status == models.PaymentStatusCompleted {
			total += b.Payment.PaidAmount
		}
	}
	return total, nil
}

// fakeVenueRepo serves a fixed set of venues.
type fakeVenueRepo struct {
	venues map[string]*models.Venue
}

func (r *fakeVenueRepo) Create(v *models.Venue) error { r.venues[v.ID] = v; return nil }
func (r *fakeVenueRepo) Update(v *models.Venue) error { r.venues[v.ID] = v; return nil }
func (r *fakeVenueRepo) GetByID(id string) (*models.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (r *fakeVenueRepo) List(city, category string, page, limit int) ([]models.Venue, error) {
	return nil, nil
}
func (r *fakeVenueRepo) SetRating(id string, rating float64, reviewCount int) error { return nil }
func (r *fakeVenueRepo) Count() (int64, error)                                      { return int64(len(r.venues)), nil }

// fakeNotifier records notifications.
type fakeNotifier struct {
	sent []string
}

func (n *fakeNotifier) Notify(userID, ntype, message string, data map[string]any) error {
	n.sent = append(n.sent, ntype)
	return nil
}
func (n *fakeNotifier) ListForUser(userID string) ([]models.Notification, error) { return nil, nil }
func (n *fakeNotifier) MarkRead(id, userID string) error                         { return nil }

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeNotifier) {
	repo := newFakeBookingRepo()
	venues := &fakeVenueRepo{venues: map[string]*models.Venue{
		"venue-1": {ID: "venue-1", Name: "Grand Palace", BasePrice: 50000, Active: true},
		"venue-2": {ID: "venue-2", Name: "Shut Down Hall", BasePrice: 20000, Active: false},
	}}
	notifier := &fakeNotifier{}
	svc := &DefaultBookingService{
		Repo:     repo,
		Venues:   venues,
		Notifier: notifier,
		Logger:   zap.NewNop(),
	}
	return svc, repo, notifier
}

func createTestBooking(t *testing.T, svc *DefaultBookingService) *models.BookingView {
	t.Helper()
	view, err := svc.CreateBooking("user-1", models.BookingInput{
		VenueID:    "venue-1",
		EventDate:  "2026-10-15",
		GuestCount: 150,
	})
	require.NoError(t, err)
	return view
}

func TestCreateBooking_SnapshotsPricing(t *testing.T) {
	svc, _, _ := newTestService()

	view := createTestBooking(t, svc)

	assert.Equal(t, models.BookingStatusPending, view.Status)
	assert.Equal(t, 50000.0, view.Pricing.Subtotal)
	assert.Equal(t, 9000.0, view.Pricing.Taxes)
	assert.Equal(t, 2500.0, view.Pricing.ServiceCharges)
	assert.Equal(t, 61500.0, view.Total)
	assert.Equal(t, models.PaymentStatusPending, view.Payment.Status)
	assert.Equal(t, 61500.0, view.Payment.DueAmount)
	assert.Regexp(t, regexp.MustCompile(`^EVB-[A-Z0-9]{8}$`), view.Reference)
	require.Len(t, view.Timeline, 1)
	assert.Equal(t, "Booking created", view.Timeline[0].Action)
}

func TestCreateBooking_InactiveVenueRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBooking("user-1", models.BookingInput{
		VenueID:    "venue-2",
		EventDate:  "2026-10-15",
		GuestCount: 50,
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCreateBooking_UnknownVenueRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateBooking("user-1", models.BookingInput{
		VenueID:    "nope",
		EventDate:  "2026-10-15",
		GuestCount: 50,
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestGetBooking_OwnershipEnforced(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	_, err := svc.GetBooking(view.ID, "someone-else")
	assert.ErrorIs(t, err, ErrAccessDenied)

	got, err := svc.GetBooking(view.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)
}

func TestGetBooking_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetBooking("missing", "user-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestApplyUpdate_AppendsExactlyOneTimelineEntry(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	// An empty patch still records an update.
	updated, err := svc.ApplyUpdate(view.ID, "user-1", models.BookingUpdate{})
	require.NoError(t, err)
	require.Len(t, updated.Timeline, 2)
	assert.Equal(t, "Booking updated", updated.Timeline[1].Action)

	// A full patch records exactly one more.
	discount := 5000.0
	code := "WELCOME10"
	method := "card"
	updated, err = svc.ApplyUpdate(view.ID, "user-1", models.BookingUpdate{
		CustomerDetails: map[string]any{"name": "Asha"},
		PromoDiscount:   &discount,
		PromoCode:       &code,
		PaymentMethod:   &method,
	})
	require.NoError(t, err)
	assert.Len(t, updated.Timeline, 3)
	assert.Equal(t, 5000.0, updated.Pricing.Discount)
	assert.Equal(t, "WELCOME10", updated.Pricing.PromoCode)
	assert.Equal(t, "card", updated.Payment.Method)
	assert.Equal(t, "Asha", updated.CustomerDetails["name"])
}

func TestApplyUpdate_DiscountReplacesPriorDiscount(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	first := 5000.0
	_, err := svc.ApplyUpdate(view.ID, "user-1", models.BookingUpdate{PromoDiscount: &first})
	require.NoError(t, err)

	second := 1000.0
	updated, err := svc.ApplyUpdate(view.ID, "user-1", models.BookingUpdate{PromoDiscount: &second})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, updated.Pricing.Discount)
	assert.Equal(t, 60500.0, updated.Total)
}

func TestApplyUpdate_ForbiddenForNonOwner(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	_, err := svc.ApplyUpdate(view.ID, "intruder", models.BookingUpdate{})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestApplyUpdate_VersionConflictSurfaces(t *testing.T) {
	svc, repo, _ := newTestService()
	view := createTestBooking(t, svc)

	repo.failNextUpdate = true
	_, err := svc.ApplyUpdate(view.ID, "user-1", models.BookingUpdate{})
	assert.ErrorIs(t, err, bookingRepo.ErrVersionConflict)
}

func TestCancelBooking(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	cancelled, err := svc.CancelBooking(view.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, "Booking cancelled", cancelled.Timeline[len(cancelled.Timeline)-1].Action)

	_, err = svc.CancelBooking(view.ID, "other")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCompleteBooking(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	completed, err := svc.CompleteBooking(view.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, completed.Status)
}

func TestListBookings(t *testing.T) {
	svc, _, _ := newTestService()
	createTestBooking(t, svc)
	createTestBooking(t, svc)

	views, total, err := svc.ListBookings("user-1", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, views, 2)

	views, total, err = svc.ListBookings("nobody", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, views)
}
