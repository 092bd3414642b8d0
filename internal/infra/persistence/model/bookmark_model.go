package model

import (
	"time"

	"github.com/google/uuid"
)

// BookmarkModel mirrors the 'bookmarked_readings' table.
type BookmarkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	Period    string    `gorm:"type:varchar(10);not null"`
	Sign      string    `gorm:"type:varchar(20);not null"`
	Title     string    `gorm:"type:varchar(150)"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "bookmarked_readings"
}
