package models

import "time"

// Venue represents a bookable event venue.
type Venue struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	City        string    `bson:"city" json:"city"`
	Address     string    `bson:"address" json:"address"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"` // e.g. "banquet", "lawn", "resort"
	Capacity    int       `bson:"capacity" json:"capacity"`
	BasePrice   float64   `bson:"base_price" json:"basePrice"`
	Amenities   []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"review_count" json:"reviewCount"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
