// Package mailer implements the booking-confirmation endpoint. It is
// stateless: it renders the confirmation email and hands it to Resend, and
// has no access to the booking store. Called both by the booking service and
// directly from the browser, hence the permissive CORS setup in cmd/mailer.
package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmailRequest mirrors the JSON body posted by the booking flow.
type EmailRequest struct {
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	BookingID       string  `json:"bookingId"`
	RoomName        string  `json:"roomName"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	NumGuests       int     `json:"numGuests"`
	Nights          int     `json:"nights"`
	TotalPrice      float64 `json:"totalPrice"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
}

type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	EmailID string `json:"emailId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// EmailSender is the transport behind the endpoint; pkg/resend satisfies it.
type EmailSender interface {
	SendHTML(ctx context.Context, to, subject, html string) (string, error)
}

type Handler struct {
	sender EmailSender
}

func NewHandler(sender EmailSender) *Handler {
	return &Handler{sender: sender}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/send-booking-email", h.SendBookingEmail)
}

func (h *Handler) SendBookingEmail(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, SendResult{Success: false, Error: "invalid request body"})
	}
	if req.GuestEmail == "" {
		return c.JSON(http.StatusInternalServerError, SendResult{Success: false, Error: "guestEmail is required"})
	}

	html, err := renderConfirmation(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, SendResult{Success: false, Error: err.Error()})
	}

	subject := fmt.Sprintf("אישור הזמנה #%s - מלון DELUX", req.BookingID)
	emailID, err := h.sender.SendHTML(c.Request().Context(), req.GuestEmail, subject, html)
	if err != nil {
		c.Logger().Errorf("send booking email: %v", err)
		return c.JSON(http.StatusInternalServerError, SendResult{Success: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, SendResult{
		Success: true,
		Message: "Email sent successfully",
		EmailID: emailID,
	})
}
