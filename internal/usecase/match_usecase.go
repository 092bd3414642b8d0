package usecase

import (
	"context"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchInput carries the partner's details for a compatibility check. The
// requesting user's own birth data comes from their profile.
type MatchInput struct {
	PartnerName string
	BirthDate   time.Time
	BirthTime   *string
	Place       string
	Latitude    float64
	Longitude   float64
	Timezone    string
}

// MatchUsecase computes and stores Kundali compatibility checks.
type MatchUsecase interface {
	// ComputeMatch scores the user's chart against the partner's birth data
	// and stores the result. Requires a complete profile.
	ComputeMatch(ctx context.Context, userID uuid.UUID, input *MatchInput) (*entity.KundaliMatch, error)

	// GetMatch returns a stored match. Only the owner may read it.
	GetMatch(ctx context.Context, userID, matchID uuid.UUID) (*entity.KundaliMatch, error)

	// ListMatches returns the user's stored matches, newest first.
	ListMatches(ctx context.Context, userID uuid.UUID) ([]*entity.KundaliMatch, error)

	// DeleteMatch removes a stored match. Only the owner may delete it.
	DeleteMatch(ctx context.Context, userID, matchID uuid.UUID) error
}
