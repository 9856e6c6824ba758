package booking

import "errors"

var (
	// ErrBookingNotFound is returned when a booking id does not resolve.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAccessDenied is returned when the caller does not own the booking.
	ErrAccessDenied = errors.New("access denied")
	// ErrVenueNotFound is returned when the referenced venue does not exist
	// or is inactive.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("invalid payment amount")
)
