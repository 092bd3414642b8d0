// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMatchNotFound is returned when a compatibility match is not found.
var ErrMatchNotFound = errors.New("match not found")

// MatchRepository defines persistence operations for compatibility matches.
type MatchRepository interface {
	// CreateMatch persists a new compatibility result for a user.
	CreateMatch(ctx context.Context, match *entity.KundaliMatch) error

	// FindMatchByID retrieves a single match by its unique ID.
	FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.KundaliMatch, error)

	// FindMatchesByUser lists a user's matches, newest first.
	FindMatchesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.KundaliMatch, error)

	// DeleteMatch removes a stored match.
	DeleteMatch(ctx context.Context, id uuid.UUID) error
}
