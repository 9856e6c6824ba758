package models

import "time"

// Review is a user's rating of a venue. A user may review a venue at most once.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"userId"`
	VenueID   string    `bson:"venue_id" json:"venueId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
