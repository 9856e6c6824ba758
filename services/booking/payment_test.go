package booking

import (
	"regexp"
	"testing"

	"eventease/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderIDPattern = regexp.MustCompile(`^CC_\d+_[A-Z0-9]{9}$`)

func TestNewOrderID_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewOrderID()
		assert.Regexp(t, orderIDPattern, id)
		seen[id] = true
	}
	assert.Len(t, seen, 50)
}

func TestInitiatePayment(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	order, err := svc.InitiatePayment(view.ID, "user-1", 61500, "card")
	require.NoError(t, err)

	assert.Regexp(t, orderIDPattern, order.OrderID)
	assert.Equal(t, view.ID, order.BookingID)
	assert.Equal(t, 61500.0, order.Amount)
	assert.Equal(t, "card", order.Method)

	got, err := svc.GetBooking(view.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "card", got.Payment.Method)
	assert.Equal(t, 61500.0, got.Payment.DueAmount)
	assert.Equal(t, "Payment initiated", got.Timeline[len(got.Timeline)-1].Action)
}

func TestInitiatePayment_RejectsNonPositiveAmount(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	_, err := svc.InitiatePayment(view.ID, "user-1", 0, "card")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.InitiatePayment(view.ID, "user-1", -100, "card")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestInitiatePayment_OwnershipEnforced(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	_, err := svc.InitiatePayment(view.ID, "intruder", 61500, "card")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestVerifyPayment_SettlesAndConfirms(t *testing.T) {
	svc, _, notifier := newTestService()
	view := createTestBooking(t, svc)

	verified, err := svc.VerifyPayment(view.ID, "user-1", "pay_123")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, verified.Status)
	assert.Equal(t, models.PaymentStatusCompleted, verified.Payment.Status)
	assert.Equal(t, "pay_123", verified.Payment.TransactionID)
	assert.Equal(t, 61500.0, verified.Payment.PaidAmount)
	assert.Equal(t, 0.0, verified.Payment.DueAmount)
	require.NotNil(t, verified.Payment.PaymentDate)
	assert.Equal(t, "Payment completed", verified.Timeline[len(verified.Timeline)-1].Action)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "booking_confirmed", notifier.sent[0])
}

func TestVerifyPayment_RepeatKeepsFieldsButExtendsTimeline(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	first, err := svc.VerifyPayment(view.ID, "user-1", "pay_123")
	require.NoError(t, err)
	paidAt := first.Payment.PaymentDate

	second, err := svc.VerifyPayment(view.ID, "user-1", "pay_456")
	require.NoError(t, err)

	// Amounts and payment date are untouched on the second pass; only the
	// transaction id and the audit trail move.
	assert.Equal(t, first.Payment.PaidAmount, second.Payment.PaidAmount)
	assert.Equal(t, 0.0, second.Payment.DueAmount)
	assert.Equal(t, paidAt.Unix(), second.Payment.PaymentDate.Unix())
	assert.Equal(t, "pay_456", second.Payment.TransactionID)
	assert.Len(t, second.Timeline, len(first.Timeline)+1)
}

func TestVerifyPayment_OwnershipEnforced(t *testing.T) {
	svc, _, _ := newTestService()
	view := createTestBooking(t, svc)

	_, err := svc.VerifyPayment(view.ID, "intruder", "pay_123")
	assert.ErrorIs(t, err, ErrAccessDenied)
}
