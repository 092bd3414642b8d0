package usecase

import (
	"context"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput reserves a temple service slot. Sankalp, the ritual
// intent, is mandatory.
type CreateBookingInput struct {
	ServiceID string
	Slot      time.Time
	Sankalp   string
	Notes     string
}

// BookingUsecase manages the temple service catalog and bookings.
type BookingUsecase interface {
	// ListServices returns the bookable service catalog.
	ListServices(ctx context.Context) ([]*entity.TempleService, error)

	// CreateBooking reserves a future slot and returns the confirmed booking.
	CreateBooking(ctx context.Context, userID uuid.UUID, input *CreateBookingInput) (*entity.Booking, error)

	// ListBookings returns the user's bookings ordered by slot time.
	ListBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// CancelBooking cancels a confirmed booking. Only the owner may cancel.
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error)

	// BookingPass renders the booking's confirmation code as a QR PNG.
	BookingPass(ctx context.Context, userID, bookingID uuid.UUID) ([]byte, error)
}
