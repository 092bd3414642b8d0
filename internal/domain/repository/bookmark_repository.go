// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookmarkNotFound is returned when a bookmarked reading is not found.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository defines persistence operations for saved readings.
type BookmarkRepository interface {
	// CreateBookmark persists a reading the user chose to keep.
	CreateBookmark(ctx context.Context, bookmark *entity.BookmarkedReading) error

	// FindBookmarksByUser lists a user's bookmarks, newest first.
	FindBookmarksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookmarkedReading, error)

	// FindBookmarkByID retrieves a single bookmark by its unique ID.
	FindBookmarkByID(ctx context.Context, id uuid.UUID) (*entity.BookmarkedReading, error)

	// DeleteBookmark removes a saved reading.
	DeleteBookmark(ctx context.Context, id uuid.UUID) error
}
