package user

import "errors"

var (
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
)
