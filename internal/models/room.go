package models

import (
	"time"

	"gorm.io/datatypes"
)

// Room is a bookable room type, not a single physical room:
// TotalRooms interchangeable units share one definition.
type Room struct {
	ID            string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description"`
	RoomType      string         `gorm:"type:varchar(50)" json:"room_type"`
	PricePerNight float64        `gorm:"not null" json:"price_per_night"`
	MaxGuests     int            `gorm:"not null" json:"max_guests"`
	TotalRooms    int            `gorm:"not null" json:"total_rooms"`
	Features      datatypes.JSON `json:"features"`
	ImageURL      string         `json:"image_url"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
