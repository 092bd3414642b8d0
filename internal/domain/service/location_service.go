package service

import (
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
)

// LocationService resolves birth places against the embedded gazetteer.
type LocationService interface {
	// SearchCities returns cities whose name matches the query, ordered by
	// match quality. Limit caps the result count.
	SearchCities(query string, limit int) []entity.City

	// NearestCity returns the gazetteer city closest to the coordinates.
	NearestCity(latitude, longitude float64) (entity.City, bool)
}
