package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. The sankalp column is NOT NULL
// because every temple booking must carry a ritual intent.
type BookingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceID        string    `gorm:"type:varchar(50);not null"`
	Slot             time.Time `gorm:"not null"`
	Sankalp          string    `gorm:"type:text;not null"`
	Notes            string    `gorm:"type:text"`
	Status           string    `gorm:"type:varchar(15);not null"`
	ConfirmationCode string    `gorm:"type:varchar(20);unique;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
