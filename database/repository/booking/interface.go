package bookingRepo

import (
	"errors"

	"eventease/models"
)

// ErrVersionConflict is returned when a versioned write lost a race with a
// concurrent writer.
var ErrVersionConflict = errors.New("booking was modified concurrently")

// BookingRepository defines data-access methods for bookings.
type BookingRepository interface {
	Create(b *models.Booking) error
	// GetByID returns (nil, nil) when no booking matches the id.
	GetByID(id string) (*models.Booking, error)
	// UpdateVersioned persists the booking only if its stored version still
	// matches b.Version, then increments it. Returns ErrVersionConflict when
	// another writer got there first.
	UpdateVersioned(b *models.Booking) error
	ListByUser(userID string, page, limit int) ([]models.Booking, error)
	CountByUser(userID string) (int64, error)
	CountByStatus() (map[string]int64, error)
	TotalRevenue() (float64, error)
}
