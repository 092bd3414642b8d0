package impl

import (
	"context"
	"strings"

	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	domainerrors "github.com/sankalpsthakur/astronova-sub007/internal/domain/errors"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"
)

// locationService implements the LocationUsecase interface over the
// built-in gazetteer.
type locationService struct {
	gazetteer service.LocationService
}

// NewLocationService is the constructor for locationService.
func NewLocationService(gazetteer service.LocationService) usecase.LocationUsecase {
	return &locationService{gazetteer: gazetteer}
}

// SearchLocations matches the query against the gazetteer.
func (srv *locationService) SearchLocations(_ context.Context, query string, limit int) ([]entity.City, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domainerrors.ErrLocationQueryEmpty
	}

	return srv.gazetteer.SearchCities(query, limit), nil
}

// ReverseLookup returns the gazetteer city nearest to the coordinates.
func (srv *locationService) ReverseLookup(_ context.Context, latitude, longitude float64) (*entity.City, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, domainerrors.ErrCoordinatesInvalid
	}

	city, ok := srv.gazetteer.NearestCity(latitude, longitude)
	if !ok {
		return nil, domainerrors.ErrLocationNotFound
	}

	return &city, nil
}
