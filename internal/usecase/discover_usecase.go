package usecase

import (
	"context"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// DiscoverOutput is the home screen snapshot: the current sky, a featured
// daily horoscope and the featured temple services. It is cached and shared
// across users.
type DiscoverOutput struct {
	Positions   []entity.PlanetPosition  `json:"positions"`
	Aspects     []entity.Aspect          `json:"aspects"`
	Featured    *entity.HoroscopeReading `json:"featured_horoscope"`
	Services    []*entity.TempleService  `json:"services"`
	GeneratedAt time.Time                `json:"generated_at"`
}

// DiscoverUsecase assembles the shared home screen snapshot.
type DiscoverUsecase interface {
	// Discover returns the current snapshot, serving a cached copy within
	// its TTL.
	Discover(ctx context.Context) (*DiscoverOutput, error)
}
