package model

import (
	"time"

	"github.com/google/uuid"
)

// KundaliMatchModel mirrors the 'kundali_matches' table. Koota scores are
// stored denormalized so stored matches render without recomputation.
type KundaliMatchModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PartnerName string    `gorm:"type:varchar(100);not null"`

	PartnerBirthDate time.Time `gorm:"type:date;not null"`
	PartnerBirthTime *string   `gorm:"type:varchar(5)"`
	PartnerPlace     string    `gorm:"type:varchar(255)"`
	PartnerLatitude  float64   `gorm:"type:decimal(9,6)"`
	PartnerLongitude float64   `gorm:"type:decimal(9,6)"`
	PartnerTimezone  string    `gorm:"type:varchar(64)"`

	Total   int `gorm:"not null"`
	Varna   int `gorm:"not null"`
	Vashya  int `gorm:"not null"`
	Tara    int `gorm:"not null"`
	Yoni    int `gorm:"not null"`
	Maitri  int `gorm:"not null"`
	Gana    int `gorm:"not null"`
	Bhakoot int `gorm:"not null"`
	Nadi    int `gorm:"not null"`

	Emotional int `gorm:"not null"`
	Mental    int `gorm:"not null"`
	Physical  int `gorm:"not null"`
	Spiritual int `gorm:"not null"`

	Verdict   string `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KundaliMatchModel) TableName() string {
	return "kundali_matches"
}
