// Package model holds the GORM structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	Profile         *ProfileModel         `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id.
// Birth data and the derived signs live here rather than on the user row.
type ProfileModel struct {
	UserID             uuid.UUID `gorm:"primaryKey;type:uuid"`
	FullName           string    `gorm:"type:varchar(100)"`
	BirthDate          time.Time `gorm:"type:date"`
	BirthTime          *string   `gorm:"type:varchar(5)"` // "HH:MM", NULL when unknown.
	BirthPlace         string    `gorm:"type:varchar(255)"`
	Latitude           float64   `gorm:"type:decimal(9,6)"`
	Longitude          float64   `gorm:"type:decimal(9,6)"`
	Timezone           string    `gorm:"type:varchar(64)"`
	SunSign            string    `gorm:"type:varchar(20)"`
	MoonSign           string    `gorm:"type:varchar(20)"`
	RisingSign         string    `gorm:"type:varchar(20)"`
	SubscriptionExpiry *time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
