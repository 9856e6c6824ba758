package models

import "time"

// Booking status values. No transition table is enforced beyond the
// ownership and role gates on each operation.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment status values.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Pricing holds the money fields of a booking. The total is never stored:
// it is derived on read so it cannot go stale when a component changes.
type Pricing struct {
	Subtotal       float64 `bson:"subtotal" json:"subtotal"`
	Taxes          float64 `bson:"taxes" json:"taxes"`
	ServiceCharges float64 `bson:"service_charges" json:"serviceCharges"`
	Discount       float64 `bson:"discount" json:"discount"`
	PromoCode      string  `bson:"promo_code,omitempty" json:"promoCode,omitempty"`
}

// Total computes subtotal + taxes + serviceCharges - discount, floored at zero.
func (p Pricing) Total() float64 {
	t := p.Subtotal + p.Taxes + p.ServiceCharges - p.Discount
	if t < 0 {
		return 0
	}
	return t
}

// Payment holds the settlement state of a booking.
type Payment struct {
	Method        string     `bson:"method,omitempty" json:"method,omitempty"`
	Status        string     `bson:"status" json:"status"`
	DueAmount     float64    `bson:"due_amount" json:"dueAmount"`
	PaidAmount    float64    `bson:"paid_amount" json:"paidAmount"`
	TransactionID string     `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	PaymentDate   *time.Time `bson:"payment_date,omitempty" json:"paymentDate,omitempty"`
}

// TimelineEntry is an immutable audit record appended on every mutating
// operation. The timeline is never pruned or reordered.
type TimelineEntry struct {
	Action    string    `bson:"action" json:"action"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Note      string    `bson:"note" json:"note"`
}

// Booking represents a venue booking and its full lifecycle state.
type Booking struct {
	ID              string          `bson:"id" json:"id"`
	Reference       string          `bson:"reference" json:"reference"`
	UserID          string          `bson:"user_id" json:"userId"`
	VenueID         string          `bson:"venue_id" json:"venueId"`
	EventDate       string          `bson:"event_date" json:"eventDate"` // "YYYY-MM-DD"
	GuestCount      int             `bson:"guest_count" json:"guestCount"`
	CustomerDetails map[string]any  `bson:"customer_details,omitempty" json:"customerDetails,omitempty"`
	Status          string          `bson:"status" json:"status"`
	Pricing         Pricing         `bson:"pricing" json:"pricing"`
	Payment         Payment         `bson:"payment" json:"payment"`
	Timeline        []TimelineEntry `bson:"timeline" json:"timeline"`
	Version         int64           `bson:"version" json:"-"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updatedAt"`
}

// AppendTimeline records a mutation on the booking's audit trail.
func (b *Booking) AppendTimeline(action, note string) {
	b.Timeline = append(b.Timeline, TimelineEntry{
		Action:    action,
		Timestamp: time.Now(),
		Note:      note,
	})
}

// BookingUpdate is the explicit patch shape accepted by the update
// endpoint. Absent fields are left untouched; unknown fields are rejected
// by the decoder.
type BookingUpdate struct {
	CustomerDetails map[string]any `json:"customerDetails"`
	PromoDiscount   *float64       `json:"promoDiscount"`
	PromoCode       *string        `json:"promoCode"`
	PaymentMethod   *string        `json:"paymentMethod"`
}
