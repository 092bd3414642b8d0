// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a temple booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines persistence operations for temple bookings.
type BookingRepository interface {
	// CreateBooking persists a confirmed booking.
	CreateBooking(ctx context.Context, booking *entity.Booking) error

	// FindBookingByID retrieves a single booking by its unique ID.
	FindBookingByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindBookingsByUser lists a user's bookings ordered by slot time.
	FindBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// UpdateBookingStatus transitions a booking's lifecycle state.
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}
