package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deluxhotel/booking/internal/models"
	"github.com/deluxhotel/booking/internal/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	err  error
	sent chan notifier.Confirmation
}

func newStubNotifier(err error) *stubNotifier {
	return &stubNotifier{err: err, sent: make(chan notifier.Confirmation, 1)}
}

func (n *stubNotifier) SendConfirmation(ctx context.Context, c notifier.Confirmation) error {
	n.sent <- c
	return n.err
}

func bookableRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Room, error) {
			return &models.Room{ID: id, Name: "חדר דלוקס", PricePerNight: 650, TotalRooms: 5}, nil
		},
	}
}

func validSubmitInput() SubmitInput {
	return SubmitInput{
		RoomID:        "room-1",
		CheckIn:       date(2025, 6, 10),
		CheckOut:      date(2025, 6, 13),
		NumGuests:     2,
		GuestName:     "  דנה לוי  ",
		GuestEmail:    "dana@example.com",
		GuestPhone:    "050-1234567",
		PricePerNight: 200,
	}
}

func TestSubmit_CreatesConfirmedBookingWithFrozenPrice(t *testing.T) {
	roomRepo := bookableRoomRepo()
	bookingRepo := &mockBookingRepo{}
	svc := NewBookingService(bookingRepo, roomRepo, NewAvailabilityService(roomRepo, bookingRepo), nil)

	// Snapshot price from search time (200) differs from the room's current
	// 650: the total must come from the snapshot.
	booking, err := svc.Submit(context.Background(), validSubmitInput())

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Equal(t, float64(600), booking.TotalPrice)
	assert.Equal(t, "דנה לוי", booking.GuestName)
	assert.NotEmpty(t, booking.ID)
	assert.Len(t, booking.ConfirmationCode(), 8)
	require.Len(t, bookingRepo.created, 1)
}

func TestSubmit_MissingGuestInfo(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	svc := NewBookingService(bookingRepo, bookableRoomRepo(), nil, nil)

	input := validSubmitInput()
	input.GuestPhone = "   "

	_, err := svc.Submit(context.Background(), input)

	assert.ErrorIs(t, err, ErrMissingGuestInfo)
	assert.Empty(t, bookingRepo.created)
}

func TestSubmit_EqualDatesRejected(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	svc := NewBookingService(bookingRepo, bookableRoomRepo(), nil, nil)

	input := validSubmitInput()
	input.CheckOut = input.CheckIn

	_, err := svc.Submit(context.Background(), input)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Empty(t, bookingRepo.created)
}

func TestSubmit_UnavailableAfterRecheckWritesNothing(t *testing.T) {
	roomRepo := bookableRoomRepo()
	// All five units taken between search and submit.
	bookingRepo := &mockBookingRepo{
		countOverlapFn: func(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error) {
			return 5, nil
		},
	}
	svc := NewBookingService(bookingRepo, roomRepo, NewAvailabilityService(roomRepo, bookingRepo), nil)

	_, err := svc.Submit(context.Background(), validSubmitInput())

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Empty(t, bookingRepo.created)
}

func TestSubmit_NotificationFailureDoesNotAffectBooking(t *testing.T) {
	roomRepo := bookableRoomRepo()
	bookingRepo := &mockBookingRepo{}
	n := newStubNotifier(errors.New("mailer returned 500"))
	svc := NewBookingService(bookingRepo, roomRepo, NewAvailabilityService(roomRepo, bookingRepo), n)

	booking, err := svc.Submit(context.Background(), validSubmitInput())

	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	require.Len(t, bookingRepo.created, 1)

	select {
	case confirmation := <-n.sent:
		assert.Equal(t, booking.ConfirmationCode(), confirmation.BookingID)
		assert.Equal(t, "חדר דלוקס", confirmation.RoomName)
		assert.Equal(t, 3, confirmation.Nights)
		assert.Equal(t, float64(600), confirmation.TotalPrice)
		assert.Equal(t, "2025-06-10", confirmation.CheckInDate)
		assert.Equal(t, "2025-06-13", confirmation.CheckOutDate)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never dispatched")
	}
}

func TestSubmit_StoreErrorOnInsert(t *testing.T) {
	roomRepo := bookableRoomRepo()
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *models.Booking) error {
			return errors.New("insert failed")
		},
	}
	svc := NewBookingService(bookingRepo, roomRepo, NewAvailabilityService(roomRepo, bookingRepo), nil)

	_, err := svc.Submit(context.Background(), validSubmitInput())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "create booking")
}
