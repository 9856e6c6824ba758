package models

// BookingView is the API representation of a booking. It carries the
// derived pricing total alongside the stored fields.
type BookingView struct {
	Booking
	Total float64 `json:"total"`
}

// View builds the API representation with the computed total.
func (b Booking) View() BookingView {
	return BookingView{Booking: b, Total: b.Pricing.Total()}
}

// Views maps a slice of bookings to their API representation.
func Views(bookings []Booking) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.View())
	}
	return out
}
