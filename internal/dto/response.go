package dto

import (
	"encoding/json"
	"time"

	"github.com/deluxhotel/booking/internal/models"
	"github.com/deluxhotel/booking/internal/service"
)

// Availability display tiers. Thresholds are presentation policy, not an
// inventory rule.
const (
	AvailabilityAvailable   = "available"
	AvailabilityLimited     = "limited"
	AvailabilityUnavailable = "unavailable"
)

type RoomSearchResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	RoomType           string   `json:"room_type"`
	PricePerNight      float64  `json:"price_per_night"`
	MaxGuests          int      `json:"max_guests"`
	Features           []string `json:"features"`
	ImageURL           string   `json:"image_url"`
	Available          int      `json:"available"`
	AvailabilityStatus string   `json:"availability_status"`
	Nights             int      `json:"nights"`
	TotalPrice         float64  `json:"total_price"`
}

type BookingResponse struct {
	ID               string               `json:"id"`
	ConfirmationCode string               `json:"confirmation_code"`
	RoomID           string               `json:"room_id"`
	RoomName         string               `json:"room_name,omitempty"`
	GuestName        string               `json:"guest_name"`
	GuestEmail       string               `json:"guest_email"`
	GuestPhone       string               `json:"guest_phone"`
	CheckInDate      string               `json:"check_in_date"`
	CheckOutDate     string               `json:"check_out_date"`
	NumGuests        int                  `json:"num_guests"`
	TotalPrice       float64              `json:"total_price"`
	Status           models.BookingStatus `json:"status"`
	SpecialRequests  string               `json:"special_requests,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
}

// AdminBookingResponse adds the short list reference used by the dashboard.
type AdminBookingResponse struct {
	BookingResponse
	Reference string `json:"reference"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// AvailabilityStatusFor maps a raw availability figure to its display tier,
// clamping overbooked (negative) values to unavailable.
func AvailabilityStatusFor(available int) string {
	switch {
	case available <= 0:
		return AvailabilityUnavailable
	case available < 5:
		return AvailabilityLimited
	default:
		return AvailabilityAvailable
	}
}

func ToRoomSearchResponse(r service.RoomResult) RoomSearchResponse {
	available := r.Available
	if available < 0 {
		available = 0
	}

	var features []string
	if len(r.Room.Features) > 0 {
		_ = json.Unmarshal(r.Room.Features, &features)
	}

	return RoomSearchResponse{
		ID:                 r.Room.ID,
		Name:               r.Room.Name,
		Description:        r.Room.Description,
		RoomType:           r.Room.RoomType,
		PricePerNight:      r.Room.PricePerNight,
		MaxGuests:          r.Room.MaxGuests,
		Features:           features,
		ImageURL:           r.Room.ImageURL,
		Available:          available,
		AvailabilityStatus: AvailabilityStatusFor(r.Available),
		Nights:             r.Nights,
		TotalPrice:         r.TotalPrice,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode(),
		RoomID:           b.RoomID,
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		GuestPhone:       b.GuestPhone,
		CheckInDate:      b.CheckInDate.Format(DateLayout),
		CheckOutDate:     b.CheckOutDate.Format(DateLayout),
		NumGuests:        b.NumGuests,
		TotalPrice:       b.TotalPrice,
		Status:           b.Status,
		SpecialRequests:  b.SpecialRequests,
		CreatedAt:        b.CreatedAt,
	}
	if b.Room != nil {
		resp.RoomName = b.Room.Name
	}
	return resp
}

func ToAdminBookingResponse(b *models.Booking) AdminBookingResponse {
	return AdminBookingResponse{
		BookingResponse: ToBookingResponse(b),
		Reference:       b.Reference(),
	}
}
