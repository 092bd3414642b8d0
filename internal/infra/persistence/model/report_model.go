package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel mirrors the 'reports' table. Status moves pending ->
// generating -> ready | failed; content stays empty until ready.
type ReportModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Title       string    `gorm:"type:varchar(150);not null"`
	Summary     string    `gorm:"type:text"`
	Content     string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(15);not null;index"`
	GeneratedAt *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
