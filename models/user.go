package models

import "time"

// User represents a platform user.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phone_number" json:"phoneNumber"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	UserType     string    `bson:"user_type" json:"userType"` // "user" or "admin"
	DeviceTokens []string  `bson:"device_tokens,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	Token    string `json:"token"`
}
