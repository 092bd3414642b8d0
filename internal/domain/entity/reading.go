package entity

import (
	"time"

	"github.com/google/uuid"
)

// HoroscopePeriod selects the span a horoscope covers.
type HoroscopePeriod string

const (
	HoroscopeDaily   HoroscopePeriod = "daily"
	HoroscopeWeekly  HoroscopePeriod = "weekly"
	HoroscopeMonthly HoroscopePeriod = "monthly"
)

// IsValid checks if the HoroscopePeriod is a known value.
func (p HoroscopePeriod) IsValid() bool {
	switch p {
	case HoroscopeDaily, HoroscopeWeekly, HoroscopeMonthly:
		return true
	default:
		return false
	}
}

// HoroscopeReading is one generated horoscope for a sign and period.
type HoroscopeReading struct {
	Sign        string          `json:"sign"`
	Period      HoroscopePeriod `json:"type"`
	Date        time.Time       `json:"date"` // Start of the covered period.
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	LuckyColor  string          `json:"lucky_color,omitempty"`
	LuckyNumber int             `json:"lucky_number,omitempty"`
}

// BookmarkedReading is a horoscope the user chose to keep.
type BookmarkedReading struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Date      time.Time       `json:"date"`
	Period    HoroscopePeriod `json:"type"`
	Sign      string          `json:"sign"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}
