package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookingHandler holds dependencies for temple booking handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{uc: uc, logger: logger}
}

// Services returns the bookable service catalog.
func (h *BookingHandler) Services(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

type createBookingRequest struct {
	ServiceID string    `json:"service_id" validate:"required"`
	Slot      time.Time `json:"slot" validate:"required"` // RFC 3339
	Sankalp   string    `json:"sankalp" validate:"required"`
	Notes     string    `json:"notes"`
}

// Create reserves a future slot for a temple service.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.uc.CreateBooking(c.Request().Context(), userID, &usecase.CreateBookingInput{
		ServiceID: req.ServiceID,
		Slot:      req.Slot,
		Sankalp:   req.Sankalp,
		Notes:     req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, booking, "Booking confirmed")
}

// List returns the authenticated user's bookings.
func (h *BookingHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookings, err := h.uc.ListBookings(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// Cancel cancels a confirmed booking.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Booking ID must be a UUID")
	}

	booking, err := h.uc.CancelBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, booking, "Booking cancelled")
}

// Pass streams the booking's confirmation QR code as a PNG.
func (h *BookingHandler) Pass(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Booking ID must be a UUID")
	}

	png, err := h.uc.BookingPass(c.Request().Context(), userID, bookingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
