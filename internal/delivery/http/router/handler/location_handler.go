package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxLocationResults caps gazetteer search responses.
const maxLocationResults = 10

// LocationHandler holds dependencies for gazetteer handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{uc: uc, logger: logger}
}

// Search matches the query against the gazetteer.
func (h *LocationHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	limit := maxLocationResults
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Limit must be a positive integer")
		}
		if parsed < limit {
			limit = parsed
		}
	}

	cities, err := h.uc.SearchLocations(c.Request().Context(), query, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "Locations retrieved successfully")
}

// Reverse returns the gazetteer city nearest to the coordinates.
func (h *LocationHandler) Reverse(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat must be a number")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lon must be a number")
	}

	city, err := h.uc.ReverseLookup(c.Request().Context(), latitude, longitude)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city, "Location retrieved successfully")
}
