package service

import (
	"context"
	"time"

	"github.com/deluxhotel/booking/internal/models"
)

// --- Mock RoomRepository ---

type mockRoomRepo struct {
	findByIDFn       func(ctx context.Context, id string) (*models.Room, error)
	findByCapacityFn func(ctx context.Context, guests int) ([]models.Room, error)
	totalInventoryFn func(ctx context.Context) (int64, error)

	findByCapacityCalls int
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id string) (*models.Room, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockRoomRepo) FindByCapacity(ctx context.Context, guests int) ([]models.Room, error) {
	m.findByCapacityCalls++
	return m.findByCapacityFn(ctx, guests)
}

func (m *mockRoomRepo) TotalInventory(ctx context.Context) (int64, error) {
	return m.totalInventoryFn(ctx)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn        func(ctx context.Context, booking *models.Booking) error
	findByIDFn      func(ctx context.Context, id string) (*models.Booking, error)
	findAllFn       func(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	countOverlapFn  func(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error)
	countByStatusFn func(ctx context.Context, status models.BookingStatus) (int64, error)
	sumMonthlyFn    func(ctx context.Context, ref time.Time) (float64, error)
	updateStatusFn  func(ctx context.Context, id string, status models.BookingStatus) error
	deleteFn        func(ctx context.Context, id string) error

	created []*models.Booking
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, booking); err != nil {
			return err
		}
	}
	m.created = append(m.created, booking)
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockBookingRepo) FindAll(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	return m.findAllFn(ctx, status)
}

func (m *mockBookingRepo) CountConfirmedOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error) {
	if m.countOverlapFn != nil {
		return m.countOverlapFn(ctx, roomID, checkIn, checkOut)
	}
	return 0, nil
}

func (m *mockBookingRepo) CountByStatus(ctx context.Context, status models.BookingStatus) (int64, error) {
	return m.countByStatusFn(ctx, status)
}

func (m *mockBookingRepo) SumMonthlyRevenue(ctx context.Context, ref time.Time) (float64, error) {
	return m.sumMonthlyFn(ctx, ref)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return m.updateStatusFn(ctx, id, status)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
