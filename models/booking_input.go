package models

// BookingInput is the payload for creating a booking.
type BookingInput struct {
	VenueID         string         `json:"venueId" binding:"required"`
	EventDate       string         `json:"eventDate" binding:"required"`
	GuestCount      int            `json:"guestCount" binding:"required,min=1"`
	CustomerDetails map[string]any `json:"customerDetails"`
}
