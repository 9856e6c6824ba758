package partner

import (
	"errors"
	"fmt"

	partnerRepo "eventease/database/repository/partner"
	"eventease/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrApplicationNotFound is returned when an application id does not resolve.
var ErrApplicationNotFound = errors.New("partner application not found")

// PartnerService manages vendor applications.
type PartnerService interface {
	Apply(input ApplicationInput) (*models.PartnerApplication, error)
	List(status string) ([]models.PartnerApplication, error)
	SetStatus(id, status string) (*models.PartnerApplication, error)
}

// ApplicationInput is the payload for a partner application.
type ApplicationInput struct {
	BusinessName string `json:"businessName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phoneNumber"`
	Category     string `json:"category" binding:"required"`
	Message      string `json:"message"`
}

// DefaultPartnerService is the production PartnerService implementation.
type DefaultPartnerService struct {
	Repo   partnerRepo.PartnerRepository
	Logger *zap.Logger
}

// Apply records an application, one per email.
func (s *DefaultPartnerService) Apply(input ApplicationInput) (*models.PartnerApplication, error) {
	app := &models.PartnerApplication{
		ID:           uuid.New().String(),
		BusinessName: input.BusinessName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		Category:     input.Category,
		Message:      input.Message,
		Status:       models.PartnerStatusPending,
	}
	if err := s.Repo.Create(app); err != nil {
		if errors.Is(err, partnerRepo.ErrDuplicateApplication) {
			return nil, err
		}
		s.Logger.Error("Apply: failed to persist application", zap.Error(err))
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}
	return app, nil
}

// List returns applications, optionally filtered by status.
func (s *DefaultPartnerService) List(status string) ([]models.PartnerApplication, error) {
	return s.Repo.List(status)
}

// SetStatus approves or rejects an application.
func (s *DefaultPartnerService) SetStatus(id, status string) (*models.PartnerApplication, error) {
	app, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if err := s.Repo.SetStatus(id, status); err != nil {
		s.Logger.Error("SetStatus: failed to update application", zap.Error(err))
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	app.Status = status
	return app, nil
}
