package admin

import (
	"fmt"

	bookingRepo "eventease/database/repository/booking"
	userRepo "eventease/database/repository/user"
	venueRepo "eventease/database/repository/venue"
)

// Stats is the admin dashboard snapshot.
type Stats struct {
	Bookings     map[string]int64 `json:"bookings"`
	TotalRevenue float64          `json:"totalRevenue"`
	Users        int64            `json:"users"`
	Venues       int64            `json:"venues"`
}

// StatsService aggregates platform statistics for the admin dashboard.
type StatsService interface {
	Collect() (*Stats, error)
}

// DefaultStatsService is the production StatsService implementation.
type DefaultStatsService struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Venues   venueRepo.VenueRepository
}

// Collect gathers booking counts by status, completed-payment revenue and
// user/venue totals.
func (s *DefaultStatsService) Collect() (*Stats, error) {
	byStatus, err := s.Bookings.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to collect booking counts: %w", err)
	}
	revenue, err := s.Bookings.TotalRevenue()
	if err != nil {
		return nil, fmt.Errorf("failed to collect revenue: %w", err)
	}
	users, err := s.Users.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	venues, err := s.Venues.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count venues: %w", err)
	}

	return &Stats{
		Bookings:     byStatus,
		TotalRevenue: revenue,
		Users:        users,
		Venues:       venues,
	}, nil
}
