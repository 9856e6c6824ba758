package admin

import (
	"errors"
	"testing"

	"eventease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubBookingRepo struct {
	byStatus map[string]int64
	revenue  float64
	err      error
}

func (s *stubBookingRepo) Create(b *models.Booking) error                 { return nil }
func (s *stubBookingRepo) GetByID(id string) (*models.Booking, error)     { return nil, nil }
func (s *stubBookingRepo) UpdateVersioned(b *models.Booking) error        { return nil }
func (s *stubBookingRepo) CountByUser(userID string) (int64, error)       { return 0, nil }
func (s *stubBookingRepo) ListByUser(userID string, page, limit int) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingRepo) CountByStatus() (map[string]int64, error) { return s.byStatus, s.err }
func (s *stubBookingRepo) TotalRevenue() (float64, error)           { return s.revenue, s.err }

type stubUserRepo struct{ count int64 }

func (s *stubUserRepo) Create(u *models.User) error                   { return nil }
func (s *stubUserRepo) Update(u *models.User) error                   { return nil }
func (s *stubUserRepo) GetByID(id string) (*models.User, error)       { return nil, nil }
func (s *stubUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (s *stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Count() (int64, error) { return s.count, nil }

type stubVenueRepo struct{ count int64 }

func (s *stubVenueRepo) Create(v *models.Venue) error             { return nil }
func (s *stubVenueRepo) Update(v *models.Venue) error             { return nil }
func (s *stubVenueRepo) GetByID(id string) (*models.Venue, error) { return nil, nil }
func (s *stubVenueRepo) List(city, category string, page, limit int) ([]models.Venue, error) {
	return nil, nil
}
func (s *stubVenueRepo) SetRating(id string, rating float64, reviewCount int) error { return nil }
func (s *stubVenueRepo) Count() (int64, error)                                      { return s.count, nil }

func TestCollect(t *testing.T) {
	svc := &DefaultStatsService{
		Bookings: &stubBookingRepo{
			byStatus: map[string]int64{"pending": 3, "confirmed": 7, "cancelled": 1},
			revenue:  431500,
		},
		Users:  &stubUserRepo{count: 42},
		Venues: &stubVenueRepo{count: 9},
	}

	stats, err := svc.Collect()
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.Bookings["confirmed"])
	assert.Equal(t, 431500.0, stats.TotalRevenue)
	assert.Equal(t, int64(42), stats.Users)
	assert.Equal(t, int64(9), stats.Venues)
}

func TestCollect_RepositoryErrorSurfaces(t *testing.T) {
	svc := &DefaultStatsService{
		Bookings: &stubBookingRepo{err: errors.New("mongo down")},
		Users:    &stubUserRepo{},
		Venues:   &stubVenueRepo{},
	}

	_, err := svc.Collect()
	assert.Error(t, err)
}
