package usecase

import (
	"context"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// BookmarkInput identifies a reading the user wants to keep.
type BookmarkInput struct {
	Date    time.Time
	Period  entity.HoroscopePeriod
	Sign    string
	Title   string
	Content string
}

// HoroscopeUsecase serves generated horoscopes and the user's saved readings.
type HoroscopeUsecase interface {
	// Horoscope returns the reading for a sign, period and date. The same
	// inputs always yield the same reading.
	Horoscope(ctx context.Context, sign string, period entity.HoroscopePeriod, date time.Time) (*entity.HoroscopeReading, error)

	// CreateBookmark saves a reading for later.
	CreateBookmark(ctx context.Context, userID uuid.UUID, input *BookmarkInput) (*entity.BookmarkedReading, error)

	// ListBookmarks returns the user's saved readings, newest first.
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entity.BookmarkedReading, error)

	// DeleteBookmark removes a saved reading. Only the owner may delete it.
	DeleteBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) error
}
