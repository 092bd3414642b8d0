package usecase

import (
	"context"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"

	"github.com/google/uuid"
)

// ChartOutput is a cast birth chart: sidereal positions plus the ascendant
// when the birth time is known.
type ChartOutput struct {
	Positions     []entity.PlanetPosition `json:"positions"`
	Ascendant     string                  `json:"ascendant,omitempty"` // Empty when the birth time is unknown.
	MoonNakshatra string                  `json:"moon_nakshatra"`
	CastAt        time.Time               `json:"cast_at"` // The birth moment the chart was cast for.
}

// DashaOutput is the Vimshottari timeline with the currently running periods.
type DashaOutput struct {
	Timeline     []entity.DashaPeriod `json:"timeline"`
	CurrentMaha  *entity.DashaPeriod  `json:"current_maha,omitempty"`
	CurrentAntar *entity.DashaPeriod  `json:"current_antar,omitempty"`
}

// AstrologyUsecase exposes ephemeris and chart computations.
type AstrologyUsecase interface {
	// Positions returns planetary positions at an instant in the requested zodiac.
	Positions(ctx context.Context, at time.Time, zodiac service.Zodiac) ([]entity.PlanetPosition, error)

	// Aspects returns the major aspects in effect at an instant.
	Aspects(ctx context.Context, at time.Time) ([]entity.Aspect, error)

	// BirthChart casts the user's chart from their stored birth data.
	// Requires a complete profile.
	BirthChart(ctx context.Context, userID uuid.UUID) (*ChartOutput, error)

	// Dashas computes the user's Vimshottari timeline. Requires a complete
	// profile with a known birth time.
	Dashas(ctx context.Context, userID uuid.UUID) (*DashaOutput, error)
}
