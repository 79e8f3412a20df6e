package models

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID              string        `gorm:"type:uuid;primaryKey" json:"id"`
	RoomID          string        `gorm:"type:uuid;not null;index:idx_booking_room_status" json:"room_id"`
	GuestName       string        `gorm:"not null" json:"guest_name"`
	GuestEmail      string        `gorm:"not null" json:"guest_email"`
	GuestPhone      string        `gorm:"not null" json:"guest_phone"`
	CheckInDate     time.Time     `gorm:"type:date;not null" json:"check_in_date"`
	CheckOutDate    time.Time     `gorm:"type:date;not null" json:"check_out_date"`
	NumGuests       int           `gorm:"not null" json:"num_guests"`
	TotalPrice      float64       `gorm:"not null" json:"total_price"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed';index:idx_booking_room_status" json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// ConfirmationCode is the guest-visible code shown after booking,
// e.g. "3F2A91B0" for id "3f2a91b0-...".
func (b *Booking) ConfirmationCode() string {
	return strings.ToUpper(truncate(b.ID, 8))
}

// Reference is the short identifier used in the admin list, e.g. "BK-3F2A".
func (b *Booking) Reference() string {
	return "BK-" + strings.ToUpper(truncate(b.ID, 4))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
