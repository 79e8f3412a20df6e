package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/deluxhotel/booking/internal/models"
	"github.com/deluxhotel/booking/internal/notifier"
	"github.com/deluxhotel/booking/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier dispatches a booking confirmation. The real implementation posts
// to the mailer service; tests swap in a stub.
type Notifier interface {
	SendConfirmation(ctx context.Context, confirmation notifier.Confirmation) error
}

// SubmitInput carries everything the guest form collects. PricePerNight is
// the price shown at search time: the booking total is frozen from it, not
// re-read from the room, so a price change between search and submit does
// not move the quote.
type SubmitInput struct {
	RoomID          string
	CheckIn         time.Time
	CheckOut        time.Time
	NumGuests       int
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests string
	PricePerNight   float64
}

type BookingService interface {
	Submit(ctx context.Context, input SubmitInput) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	roomRepo     repository.RoomRepository
	availability AvailabilityService
	notifier     Notifier
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	availability AvailabilityService,
	n Notifier,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		availability: availability,
		notifier:     n,
	}
}

func (in *SubmitInput) validate() error {
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return ErrMissingDates
	}
	if !in.CheckOut.After(in.CheckIn) {
		return ErrInvalidDateRange
	}
	if in.NumGuests <= 0 {
		return ErrInvalidGuests
	}
	if strings.TrimSpace(in.GuestName) == "" ||
		strings.TrimSpace(in.GuestEmail) == "" ||
		strings.TrimSpace(in.GuestPhone) == "" {
		return ErrMissingGuestInfo
	}
	return nil
}

func (s *bookingService) Submit(ctx context.Context, input SubmitInput) (*models.Booking, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(ctx, input.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("load room: %w", err)
	}

	// Inventory may have moved since the guest searched; check again before
	// writing. The check and the insert are not one transaction, so two
	// submissions racing for the last unit can still both pass.
	available, err := s.availability.Available(ctx, input.RoomID, input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("recheck availability: %w", err)
	}
	if available <= 0 {
		return nil, ErrRoomUnavailable
	}

	nights := Nights(input.CheckIn, input.CheckOut)
	booking := &models.Booking{
		ID:              uuid.NewString(),
		RoomID:          input.RoomID,
		GuestName:       strings.TrimSpace(input.GuestName),
		GuestEmail:      strings.TrimSpace(input.GuestEmail),
		GuestPhone:      strings.TrimSpace(input.GuestPhone),
		CheckInDate:     input.CheckIn,
		CheckOutDate:    input.CheckOut,
		NumGuests:       input.NumGuests,
		TotalPrice:      input.PricePerNight * float64(nights),
		Status:          models.StatusConfirmed,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Fire-and-forget: the booking is committed whatever happens to the email.
	if s.notifier != nil {
		go s.sendConfirmation(booking, room.Name, nights)
	}

	return booking, nil
}

func (s *bookingService) sendConfirmation(booking *models.Booking, roomName string, nights int) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	confirmation := notifier.Confirmation{
		GuestName:       booking.GuestName,
		GuestEmail:      booking.GuestEmail,
		BookingID:       booking.ConfirmationCode(),
		RoomName:        roomName,
		CheckInDate:     booking.CheckInDate.Format("2006-01-02"),
		CheckOutDate:    booking.CheckOutDate.Format("2006-01-02"),
		NumGuests:       booking.NumGuests,
		Nights:          nights,
		TotalPrice:      booking.TotalPrice,
		SpecialRequests: booking.SpecialRequests,
	}

	if err := s.notifier.SendConfirmation(ctx, confirmation); err != nil {
		log.Printf("[booking] confirmation email for %s failed: %v", booking.ConfirmationCode(), err)
	}
}
