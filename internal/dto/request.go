package dto

import "time"

const DateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID          string  `json:"room_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	NumGuests       int     `json:"num_guests"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone"`
	SpecialRequests string  `json:"special_requests"`
	PricePerNight   float64 `json:"price_per_night"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// ParseDate accepts the wire format used by the search query parameters and
// the booking form, e.g. "2025-06-10". An empty value yields the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}
