package repository

import (
	"context"

	"github.com/deluxhotel/booking/internal/models"
	"gorm.io/gorm"
)

type RoomRepository interface {
	FindByID(ctx context.Context, id string) (*models.Room, error)
	// FindByCapacity returns rooms that fit at least guests people,
	// cheapest first.
	FindByCapacity(ctx context.Context, guests int) ([]models.Room, error)
	TotalInventory(ctx context.Context) (int64, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByCapacity(ctx context.Context, guests int) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("max_guests >= ?", guests).
		Order("price_per_night ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) TotalInventory(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Room{}).
		Select("COALESCE(SUM(total_rooms), 0)").
		Scan(&total).Error
	return total, err
}
