package usecase

import (
	"context"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// LocationUsecase resolves birth places for onboarding and match forms.
type LocationUsecase interface {
	// SearchLocations matches the query against the gazetteer.
	SearchLocations(ctx context.Context, query string, limit int) ([]entity.City, error)

	// ReverseLookup returns the gazetteer city nearest to the coordinates.
	ReverseLookup(ctx context.Context, latitude, longitude float64) (*entity.City, error)
}
