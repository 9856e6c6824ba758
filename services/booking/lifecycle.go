package booking

import "eventease/models"

// ApplyUpdate applies a partial patch to a booking owned by the caller.
// customerDetails overwrites wholesale; promoDiscount replaces any prior
// discount rather than composing with it; paymentMethod overwrites the
// stored method. Exactly one timeline entry is appended per invocation,
// whether or not any field was present in the patch.
func (s *DefaultBookingService) ApplyUpdate(bookingID, callerID string, patch models.BookingUpdate) (*models.BookingView, error) {
	b, err := s.fetchOwned(bookingID, callerID)
	if err != nil {
		return nil, err
	}

	if patch.CustomerDetails != nil {
		b.CustomerDetails = patch.CustomerDetails
	}
	if patch.PromoDiscount != nil {
		b.Pricing.Discount = *patch.PromoDiscount
		if patch.PromoCode != nil {
			b.Pricing.PromoCode = *patch.PromoCode
		}
	}
	if patch.PaymentMethod != nil {
		b.Payment.Method = *patch.PaymentMethod
	}

	b.AppendTimeline("Booking updated", "Booking details were updated")

	if err := s.Repo.UpdateVersioned(b); err != nil {
		return nil, err
	}

	view := b.View()
	return &view, nil
}
