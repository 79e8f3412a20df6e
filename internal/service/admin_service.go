package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/deluxhotel/booking/internal/models"
	"github.com/deluxhotel/booking/internal/repository"
	"gorm.io/gorm"
)

// DashboardStats holds the numbers shown at the top of the admin page.
type DashboardStats struct {
	TotalBookings    int64   `json:"total_bookings"`
	OccupancyPercent int     `json:"occupancy_percent"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	AvailableRooms   int64   `json:"available_rooms"`
}

type AdminService interface {
	ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	Stats(ctx context.Context) (*DashboardStats, error)
}

type adminService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	now         func() time.Time
}

func NewAdminService(bookingRepo repository.BookingRepository, roomRepo repository.RoomRepository) AdminService {
	return &adminService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		now:         time.Now,
	}
}

func (s *adminService) ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	if status != nil && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.bookingRepo.FindAll(ctx, status)
}

func (s *adminService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	return s.bookingRepo.FindByID(ctx, id)
}

func (s *adminService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

func (s *adminService) Stats(ctx context.Context) (*DashboardStats, error) {
	all, err := s.bookingRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	confirmed, err := s.bookingRepo.CountByStatus(ctx, models.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}

	inventory, err := s.roomRepo.TotalInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum inventory: %w", err)
	}

	revenue, err := s.bookingRepo.SumMonthlyRevenue(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("sum monthly revenue: %w", err)
	}

	occupancy := 0
	if inventory > 0 {
		occupancy = int(math.Round(float64(confirmed) / float64(inventory) * 100))
	}

	return &DashboardStats{
		TotalBookings:    int64(len(all)),
		OccupancyPercent: occupancy,
		MonthlyRevenue:   revenue,
		AvailableRooms:   inventory - confirmed,
	}, nil
}
