package booking

import (
	"fmt"
	"time"

	"eventease/models"
)

// NewOrderID synthesizes a payment order identifier in the form
// CC_<epoch-ms>_<9-char-uppercase-alnum>.
func NewOrderID() string {
	return fmt.Sprintf("CC_%d_%s", time.Now().UnixMilli(), randomUpperAlnum(9))
}

// InitiatePayment records the chosen method and due amount on the booking
// and returns a synthesized order. The amount is taken as given; it is not
// reconciled against the pricing total. The order is not persisted beyond
// the timeline note.
func (s *DefaultBookingService) InitiatePayment(bookingID, callerID string, amount float64, method string) (*PaymentOrder, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	b, err := s.fetchOwned(bookingID, callerID)
	if err != nil {
		return nil, err
	}

	orderID := NewOrderID()
	b.Payment.Method = method
	b.Payment.DueAmount = amount
	b.AppendTimeline("Payment initiated",
		fmt.Sprintf("Payment of %.2f initiated via %s (order %s)", amount, method, orderID))

	if err := s.Repo.UpdateVersioned(b); err != nil {
		return nil, err
	}

	return &PaymentOrder{
		OrderID:   orderID,
		BookingID: b.ID,
		Amount:    amount,
		Method:    method,
	}, nil
}

// VerifyPayment settles the booking's payment and promotes it to confirmed.
// No transition guard applies: verifying an already-confirmed booking leaves
// its payment fields unchanged but still appends a completion timeline entry.
// Ownership is enforced the same way as on update and initiate.
func (s *DefaultBookingService) VerifyPayment(bookingID, callerID, paymentID string) (*models.BookingView, error) {
	b, err := s.fetchOwned(bookingID, callerID)
	if err != nil {
		return nil, err
	}

	b.Status = models.BookingStatusConfirmed
	b.Payment.Status = models.PaymentStatusCompleted
	b.Payment.TransactionID = paymentID
	if b.Payment.DueAmount > 0 {
		b.Payment.PaidAmount = b.Payment.DueAmount
		b.Payment.DueAmount = 0
		now := time.Now()
		b.Payment.PaymentDate = &now
	}
	b.AppendTimeline("Payment completed",
		fmt.Sprintf("Payment %s confirmed, booking is confirmed", paymentID))

	if err := s.Repo.UpdateVersioned(b); err != nil {
		return nil, err
	}

	s.notify(b.UserID, "booking_confirmed",
		fmt.Sprintf("Your booking %s is confirmed.", b.Reference),
		map[string]any{
			"bookingId": b.ID,
			"reference": b.Reference,
			"amount":    b.Payment.PaidAmount,
		})

	view := b.View()
	return &view, nil
}
