package service

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrMissingDates     = errors.New("check-in and check-out dates are required")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrInvalidGuests    = errors.New("number of guests must be positive")
	ErrMissingGuestInfo = errors.New("guest name, email and phone are required")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrRoomUnavailable  = errors.New("room is no longer available for these dates")
)
