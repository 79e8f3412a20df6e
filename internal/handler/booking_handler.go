package handler

import (
	"errors"
	"net/http"

	"github.com/deluxhotel/booking/internal/dto"
	"github.com/deluxhotel/booking/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/bookings", h.CreateBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RoomID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "room_id is required")
	}

	checkIn, err := dto.ParseDate(req.CheckInDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_in_date")
	}
	checkOut, err := dto.ParseDate(req.CheckOutDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check_out_date")
	}

	booking, err := h.svc.Submit(c.Request().Context(), service.SubmitInput{
		RoomID:          req.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumGuests:       req.NumGuests,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		SpecialRequests: req.SpecialRequests,
		PricePerNight:   req.PricePerNight,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingDates),
			errors.Is(err, service.ErrInvalidDateRange),
			errors.Is(err, service.ErrInvalidGuests),
			errors.Is(err, service.ErrMissingGuestInfo):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRoomNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRoomUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "booking failed, please try again or contact us")
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}
