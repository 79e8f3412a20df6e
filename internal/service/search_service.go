package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/deluxhotel/booking/internal/models"
	"github.com/deluxhotel/booking/internal/repository"
)

// RoomResult is one search hit: a room annotated with live availability and
// the total price for the requested stay.
type RoomResult struct {
	Room       models.Room
	Available  int
	Nights     int
	TotalPrice float64
}

type SearchService interface {
	// Search returns rooms that fit guestCount people, cheapest first, each
	// with its remaining availability for [checkIn, checkOut].
	Search(ctx context.Context, checkIn, checkOut time.Time, guestCount int) ([]RoomResult, error)
}

type searchService struct {
	roomRepo     repository.RoomRepository
	availability AvailabilityService
}

func NewSearchService(roomRepo repository.RoomRepository, availability AvailabilityService) SearchService {
	return &searchService{roomRepo: roomRepo, availability: availability}
}

// Nights returns the length of a stay in whole nights, rounding partial days up.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(math.Abs(checkOut.Sub(checkIn).Hours()) / 24))
}

func (s *searchService) Search(ctx context.Context, checkIn, checkOut time.Time, guestCount int) ([]RoomResult, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return nil, ErrMissingDates
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	nights := Nights(checkIn, checkOut)

	rooms, err := s.roomRepo.FindByCapacity(ctx, guestCount)
	if err != nil {
		return nil, fmt.Errorf("search rooms: %w", err)
	}

	results := make([]RoomResult, len(rooms))
	errs := make([]error, len(rooms))

	// Availability checks are independent per room; fan them out and wait.
	var wg sync.WaitGroup
	wg.Add(len(rooms))
	for i, room := range rooms {
		go func(i int, room models.Room) {
			defer wg.Done()
			available, err := s.availability.Available(ctx, room.ID, checkIn, checkOut)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = RoomResult{
				Room:       room,
				Available:  available,
				Nights:     nights,
				TotalPrice: room.PricePerNight * float64(nights),
			}
		}(i, room)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}
	}

	return results, nil
}
