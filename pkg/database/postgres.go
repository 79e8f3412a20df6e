package database

import (
	"log"

	"github.com/deluxhotel/booking/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Room{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	if err := SeedRooms(db); err != nil {
		log.Fatalf("failed to seed rooms: %v", err)
	}

	return db
}

// SeedRooms inserts the room catalogue on first start. There is no
// room-editing flow, so an already-populated table is left untouched.
func SeedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := []models.Room{
		{
			ID:            uuid.NewString(),
			Name:          "חדר סטנדרט",
			Description:   "חדר נעים ומרווח עם מיטה זוגית, מתאים לזוגות",
			RoomType:      "standard",
			PricePerNight: 450,
			MaxGuests:     2,
			TotalRooms:    10,
			Features:      datatypes.JSON([]byte(`["מיזוג אוויר","טלוויזיה","Wi-Fi חינם"]`)),
			ImageURL:      "/images/rooms/standard.jpg",
		},
		{
			ID:            uuid.NewString(),
			Name:          "חדר דלוקס",
			Description:   "חדר מפנק עם נוף לים ופינת ישיבה",
			RoomType:      "deluxe",
			PricePerNight: 650,
			MaxGuests:     3,
			TotalRooms:    8,
			Features:      datatypes.JSON([]byte(`["נוף לים","מיני בר","מרפסת","Wi-Fi חינם"]`)),
			ImageURL:      "/images/rooms/deluxe.jpg",
		},
		{
			ID:            uuid.NewString(),
			Name:          "סוויטה משפחתית",
			Description:   "סוויטה גדולה עם שני חדרי שינה, מתאימה למשפחות",
			RoomType:      "family_suite",
			PricePerNight: 950,
			MaxGuests:     5,
			TotalRooms:    6,
			Features:      datatypes.JSON([]byte(`["שני חדרי שינה","מטבחון","סלון","מרפסת"]`)),
			ImageURL:      "/images/rooms/family.jpg",
		},
		{
			ID:            uuid.NewString(),
			Name:          "סוויטת יוקרה",
			Description:   "הסוויטה המפוארת ביותר שלנו, עם ג'קוזי ונוף פנורמי",
			RoomType:      "luxury_suite",
			PricePerNight: 1500,
			MaxGuests:     4,
			TotalRooms:    6,
			Features:      datatypes.JSON([]byte(`["ג'קוזי","נוף פנורמי","שירות חדרים 24/7","מיני בר"]`)),
			ImageURL:      "/images/rooms/luxury.jpg",
		},
	}

	return db.Create(&rooms).Error
}
