package models

import "time"

// Contact is a message submitted through the contact form.
type Contact struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
