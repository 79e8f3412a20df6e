package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deluxhotel/booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAvailability returns a fixed figure per room id.
type stubAvailability struct {
	perRoom map[string]int
	err     error
}

func (s *stubAvailability) Available(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.perRoom[roomID], nil
}

func TestSearch_MissingDatesIssuesNoQuery(t *testing.T) {
	roomRepo := &mockRoomRepo{}
	svc := NewSearchService(roomRepo, &stubAvailability{})

	_, err := svc.Search(context.Background(), time.Time{}, date(2025, 6, 12), 2)

	assert.ErrorIs(t, err, ErrMissingDates)
	assert.Equal(t, 0, roomRepo.findByCapacityCalls)
}

func TestSearch_EqualDatesIssuesNoQuery(t *testing.T) {
	roomRepo := &mockRoomRepo{}
	svc := NewSearchService(roomRepo, &stubAvailability{})

	day := date(2025, 6, 10)
	_, err := svc.Search(context.Background(), day, day, 2)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Equal(t, 0, roomRepo.findByCapacityCalls)
}

func TestSearch_InvertedDatesIssuesNoQuery(t *testing.T) {
	roomRepo := &mockRoomRepo{}
	svc := NewSearchService(roomRepo, &stubAvailability{})

	_, err := svc.Search(context.Background(), date(2025, 6, 12), date(2025, 6, 10), 2)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Equal(t, 0, roomRepo.findByCapacityCalls)
}

func TestSearch_AnnotatesRoomsWithAvailabilityAndPrice(t *testing.T) {
	roomRepo := &mockRoomRepo{
		findByCapacityFn: func(ctx context.Context, guests int) ([]models.Room, error) {
			assert.Equal(t, 2, guests)
			return []models.Room{
				{ID: "cheap", PricePerNight: 200, MaxGuests: 2, TotalRooms: 5},
				{ID: "dear", PricePerNight: 650, MaxGuests: 3, TotalRooms: 8},
			}, nil
		},
	}
	availability := &stubAvailability{perRoom: map[string]int{"cheap": 5, "dear": 0}}
	svc := NewSearchService(roomRepo, availability)

	results, err := svc.Search(context.Background(), date(2025, 6, 10), date(2025, 6, 13), 2)

	require.NoError(t, err)
	require.Len(t, results, 2)

	// Repository order (cheapest first) is preserved.
	assert.Equal(t, "cheap", results[0].Room.ID)
	assert.Equal(t, "dear", results[1].Room.ID)

	assert.Equal(t, 3, results[0].Nights)
	assert.Equal(t, float64(600), results[0].TotalPrice)
	assert.Equal(t, 5, results[0].Available)

	assert.Equal(t, float64(1950), results[1].TotalPrice)
	assert.Equal(t, 0, results[1].Available)
}

func TestSearch_StoreErrorSurfacesAsFailure(t *testing.T) {
	roomRepo := &mockRoomRepo{
		findByCapacityFn: func(ctx context.Context, guests int) ([]models.Room, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewSearchService(roomRepo, &stubAvailability{})

	_, err := svc.Search(context.Background(), date(2025, 6, 10), date(2025, 6, 12), 2)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search rooms")
}

func TestSearch_AvailabilityErrorSurfacesAsFailure(t *testing.T) {
	roomRepo := &mockRoomRepo{
		findByCapacityFn: func(ctx context.Context, guests int) ([]models.Room, error) {
			return []models.Room{{ID: "room-1", PricePerNight: 450}}, nil
		},
	}
	svc := NewSearchService(roomRepo, &stubAvailability{err: errors.New("timeout")})

	_, err := svc.Search(context.Background(), date(2025, 6, 10), date(2025, 6, 12), 2)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "check availability")
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(date(2025, 6, 10), date(2025, 6, 11)))
	assert.Equal(t, 3, Nights(date(2025, 6, 10), date(2025, 6, 13)))
	assert.Equal(t, 31, Nights(date(2025, 6, 30), date(2025, 7, 31)))
}
