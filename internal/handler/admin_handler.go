package handler

import (
	"errors"
	"net/http"

	"github.com/deluxhotel/booking/internal/dto"
	"github.com/deluxhotel/booking/internal/models"
	"github.com/deluxhotel/booking/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/api/v1/admin")
	admin.GET("/bookings", h.ListBookings)
	admin.PUT("/bookings/:id/status", h.UpdateBookingStatus)
	admin.DELETE("/bookings/:id", h.DeleteBooking)
	admin.GET("/stats", h.GetStats)
}

func (h *AdminHandler) ListBookings(c echo.Context) error {
	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		status = &bs
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load bookings")
	}

	resp := make([]dto.AdminBookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToAdminBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), models.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to update booking")
		}
	}

	return c.JSON(http.StatusOK, dto.ToAdminBookingResponse(booking))
}

func (h *AdminHandler) DeleteBooking(c echo.Context) error {
	if err := h.svc.DeleteBooking(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete booking")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load stats")
	}

	return c.JSON(http.StatusOK, stats)
}
