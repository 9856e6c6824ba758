package user

import "eventease/models"

// UserService covers registration, authentication and profile management.
type UserService interface {
	Register(input RegistrationInput) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
}

// RegistrationInput is the payload for creating an account.
type RegistrationInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required,min=8"`
}

// ProfileUpdate is the payload for updating a profile. Absent fields are
// left untouched.
type ProfileUpdate struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	DeviceToken *string `json:"deviceToken"`
}
