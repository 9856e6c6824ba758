package models

import "time"

// Partner application status values.
const (
	PartnerStatusPending  = "pending"
	PartnerStatusApproved = "approved"
	PartnerStatusRejected = "rejected"
)

// PartnerApplication is a request from a vendor to join the platform.
// At most one application exists per email.
type PartnerApplication struct {
	ID           string    `bson:"id" json:"id"`
	BusinessName string    `bson:"business_name" json:"businessName"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phone_number" json:"phoneNumber"`
	Category     string    `bson:"category" json:"category"`
	Message      string    `bson:"message" json:"message"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
