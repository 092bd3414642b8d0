package entity

import (
	"time"

	"github.com/google/uuid"
)

// TempleServiceKind categorizes bookable temple offerings.
type TempleServiceKind string

const (
	ServicePooja        TempleServiceKind = "pooja"
	ServiceConsultation TempleServiceKind = "consultation"
	ServiceHavan        TempleServiceKind = "havan"
)

// TempleService is a catalog entry for a bookable ritual or consultation.
type TempleService struct {
	ID          string            `json:"id"`
	Kind        TempleServiceKind `json:"kind"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Duration    time.Duration     `json:"duration"`
	PriceCents  int               `json:"price_cents"`
}

// BookingStatus tracks a temple booking through its lifecycle.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a reserved slot for a temple service. The sankalp (ritual
// intent) is mandatory metadata for every booking.
type Booking struct {
	ID               uuid.UUID     `json:"id"`
	UserID           uuid.UUID     `json:"user_id"`
	ServiceID        string        `json:"service_id"`
	Slot             time.Time     `json:"slot"` // Scheduled start, must be in the future at creation.
	Sankalp          string        `json:"sankalp"`
	Notes            string        `json:"notes,omitempty"`
	Status           BookingStatus `json:"status"`
	ConfirmationCode string        `json:"confirmation_code"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Cancellable reports whether the booking can still be cancelled.
func (b *Booking) Cancellable() bool {
	return b.Status == BookingConfirmed
}
