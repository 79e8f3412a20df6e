package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/deluxhotel/booking/internal/dto"
	"github.com/deluxhotel/booking/internal/service"
	"github.com/labstack/echo/v4"
)

type SearchHandler struct {
	search       service.SearchService
	availability service.AvailabilityService
}

func NewSearchHandler(search service.SearchService, availability service.AvailabilityService) *SearchHandler {
	return &SearchHandler{search: search, availability: availability}
}

func (h *SearchHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/rooms")
	rooms.GET("/search", h.SearchRooms)
	rooms.GET("/:id/availability", h.GetAvailability)
}

// SearchRooms handles the guest search. The query parameter names match the
// ones the booking page puts in its URL, so a shared link re-runs the search.
func (h *SearchHandler) SearchRooms(c echo.Context) error {
	checkIn, err := dto.ParseDate(c.QueryParam("checkin"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid checkin date")
	}
	checkOut, err := dto.ParseDate(c.QueryParam("checkout"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid checkout date")
	}

	guests := 1
	if g := c.QueryParam("guests"); g != "" {
		guests, err = strconv.Atoi(g)
		if err != nil || guests < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid guests count")
		}
	}

	results, err := h.search.Search(c.Request().Context(), checkIn, checkOut, guests)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingDates), errors.Is(err, service.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "room search failed, please try again")
		}
	}

	resp := make([]dto.RoomSearchResponse, len(results))
	for i, r := range results {
		resp[i] = dto.ToRoomSearchResponse(r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) GetAvailability(c echo.Context) error {
	checkIn, err := dto.ParseDate(c.QueryParam("checkin"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid checkin date")
	}
	checkOut, err := dto.ParseDate(c.QueryParam("checkout"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid checkout date")
	}
	if checkIn.IsZero() || checkOut.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "checkin and checkout are required")
	}
	if !checkOut.After(checkIn) {
		return echo.NewHTTPError(http.StatusBadRequest, "checkout must be after checkin")
	}

	available, err := h.availability.Available(c.Request().Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "availability check failed")
	}

	display := available
	if display < 0 {
		display = 0
	}

	return c.JSON(http.StatusOK, map[string]any{
		"room_id":             c.Param("id"),
		"available":           display,
		"availability_status": dto.AvailabilityStatusFor(available),
	})
}
