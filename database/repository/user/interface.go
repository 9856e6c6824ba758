package userRepo

import (
	"eventease/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data-access methods for users.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	// GetByID returns (nil, nil) when no user matches the id.
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user matches the email.
	GetByEmail(email string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	Count() (int64, error)
}
