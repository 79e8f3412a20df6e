package service

import (
	"context"
	"errors"
	"time"

	"github.com/deluxhotel/booking/internal/repository"
	"gorm.io/gorm"
)

type AvailabilityService interface {
	// Available returns how many units of the room can still be booked for
	// [checkIn, checkOut]: total inventory minus confirmed overlapping
	// bookings. The raw difference is returned, so an overbooked room yields
	// a negative number; callers treat anything <= 0 as unavailable.
	Available(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
}

type availabilityService struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
}

func NewAvailabilityService(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository) AvailabilityService {
	return &availabilityService{roomRepo: roomRepo, bookingRepo: bookingRepo}
}

func (s *availabilityService) Available(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	room, err := s.roomRepo.FindByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, err
	}

	booked, err := s.bookingRepo.CountConfirmedOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return 0, err
	}

	return room.TotalRooms - int(booked), nil
}
