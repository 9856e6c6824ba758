package models

import "time"

// Notification is a persisted message for a user, optionally pushed to
// their registered devices.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"user_id" json:"userId"`
	Type      string         `bson:"type" json:"type"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}
