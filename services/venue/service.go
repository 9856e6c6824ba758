package venue

import (
	"errors"
	"fmt"

	reviewRepo "eventease/database/repository/review"
	venueRepo "eventease/database/repository/venue"
	"eventease/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrVenueNotFound is returned when a venue id does not resolve.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// VenueService covers venue browsing, admin management and reviews.
type VenueService interface {
	List(city, category string, page, limit int) ([]models.Venue, error)
	Get(id string) (*models.Venue, error)
	Create(v models.Venue) (*models.Venue, error)
	Update(id string, v models.Venue) (*models.Venue, error)
	AddReview(userID, venueID string, rating int, comment string) (*models.Review, error)
	ListReviews(venueID string) ([]models.Review, error)
}

// DefaultVenueService is the production VenueService implementation.
type DefaultVenueService struct {
	Repo    venueRepo.VenueRepository
	Reviews reviewRepo.ReviewRepository
	Logger  *zap.Logger
}

// List returns active venues with optional filters.
func (s *DefaultVenueService) List(city, category string, page, limit int) ([]models.Venue, error) {
	return s.Repo.List(city, category, page, limit)
}

// Get returns a single venue.
func (s *DefaultVenueService) Get(id string) (*models.Venue, error) {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVenueNotFound
	}
	return v, nil
}

// Create persists a new venue.
func (s *DefaultVenueService) Create(v models.Venue) (*models.Venue, error) {
	v.ID = uuid.New().String()
	v.Active = true
	v.Rating = 0
	v.ReviewCount = 0
	if err := s.Repo.Create(&v); err != nil {
		s.Logger.Error("Create: failed to persist venue", zap.Error(err))
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return &v, nil
}

// Update overwrites a venue's editable fields.
func (s *DefaultVenueService) Update(id string, v models.Venue) (*models.Venue, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	existing.Name = v.Name
	existing.City = v.City
	existing.Address = v.Address
	existing.Description = v.Description
	existing.Category = v.Category
	existing.Capacity = v.Capacity
	existing.BasePrice = v.BasePrice
	existing.Amenities = v.Amenities
	existing.Active = v.Active

	if err := s.Repo.Update(existing); err != nil {
		s.Logger.Error("Update: failed to update venue", zap.Error(err))
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return existing, nil
}

// AddReview records a review and recomputes the venue's rating aggregate.
func (s *DefaultVenueService) AddReview(userID, venueID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	v, err := s.Get(venueID)
	if err != nil {
		return nil, err
	}

	rev := &models.Review{
		ID:      uuid.New().String(),
		UserID:  userID,
		VenueID: venueID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.Reviews.Create(rev); err != nil {
		return nil, err
	}

	// Incremental running average over the stored aggregate.
	count := v.ReviewCount + 1
	newRating := (v.Rating*float64(v.ReviewCount) + float64(rating)) / float64(count)
	if err := s.Repo.SetRating(venueID, newRating, count); err != nil {
		s.Logger.Warn("AddReview: failed to update rating aggregate", zap.Error(err))
	}

	return rev, nil
}

// ListReviews returns all reviews for a venue, newest first.
func (s *DefaultVenueService) ListReviews(venueID string) ([]models.Review, error) {
	return s.Reviews.ListByVenue(venueID)
}
