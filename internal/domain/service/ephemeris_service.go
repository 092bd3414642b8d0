package service

import (
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// Zodiac identifies the reference frame used for longitudes.
type Zodiac string

const (
	// ZodiacTropical measures from the vernal equinox (western astrology).
	ZodiacTropical Zodiac = "tropical"
	// ZodiacSidereal measures against the fixed stars using the Lahiri
	// ayanamsa (vedic astrology).
	ZodiacSidereal Zodiac = "sidereal"
)

// EphemerisService computes celestial positions. The production
// implementation uses closed-form series; a Swiss-ephemeris-backed
// implementation can satisfy the same contract.
type EphemerisService interface {
	// PositionsAt returns positions of all tracked planets at an instant,
	// in the requested zodiac, in traditional planet order.
	PositionsAt(at time.Time, zodiac Zodiac) []entity.PlanetPosition

	// AspectsAt returns the major aspects in effect between planet pairs.
	AspectsAt(at time.Time) []entity.Aspect

	// Ascendant returns the sidereal rising sign for a moment and place.
	Ascendant(at time.Time, latitude, longitude float64) string
}
