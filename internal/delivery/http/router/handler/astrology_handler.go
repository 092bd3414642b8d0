package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AstrologyHandler holds dependencies for ephemeris and chart handlers.
type AstrologyHandler struct {
	uc     usecase.AstrologyUsecase
	logger *slog.Logger
}

// NewAstrologyHandler is the constructor for AstrologyHandler, injected by Fx.
func NewAstrologyHandler(uc usecase.AstrologyUsecase, logger *slog.Logger) *AstrologyHandler {
	return &AstrologyHandler{uc: uc, logger: logger}
}

// parseDateParam reads an optional YYYY-MM-DD query parameter, defaulting to
// the current instant.
func parseDateParam(c echo.Context, name string) (time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Now(), true
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// EphemerisCurrent returns tropical positions for the current instant.
func (h *AstrologyHandler) EphemerisCurrent(c echo.Context) error {
	positions, err := h.uc.Positions(c.Request().Context(), time.Now(), service.ZodiacTropical)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"planets": positions}, "Ephemeris retrieved successfully")
}

// EphemerisAt returns positions at a date; system=vedic switches to the
// sidereal zodiac.
func (h *AstrologyHandler) EphemerisAt(c echo.Context) error {
	at, ok := parseDateParam(c, "date")
	if !ok {
		return response.BadRequest(c, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
	}

	zodiac := service.ZodiacTropical
	if c.QueryParam("system") == "vedic" {
		zodiac = service.ZodiacSidereal
	}

	positions, err := h.uc.Positions(c.Request().Context(), at, zodiac)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"planets": positions}, "Ephemeris retrieved successfully")
}

type positionSummary struct {
	Degree float64 `json:"degree"`
	Sign   string  `json:"sign"`
}

// Positions returns current sidereal positions keyed by planet name.
func (h *AstrologyHandler) Positions(c echo.Context) error {
	positions, err := h.uc.Positions(c.Request().Context(), time.Now(), service.ZodiacSidereal)
	if err != nil {
		return errors.WithStack(err)
	}

	byPlanet := make(map[string]positionSummary, len(positions))
	for _, pos := range positions {
		byPlanet[string(pos.Planet)] = positionSummary{Degree: pos.SignDegree, Sign: pos.Sign}
	}

	return response.Success(c, http.StatusOK, byPlanet, "Positions retrieved successfully")
}

// Aspects returns the major aspects in effect at a date.
func (h *AstrologyHandler) Aspects(c echo.Context) error {
	at, ok := parseDateParam(c, "date")
	if !ok {
		return response.BadRequest(c, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
	}

	aspects, err := h.uc.Aspects(c.Request().Context(), at)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"aspects": aspects}, "Aspects retrieved successfully")
}

// BirthChart casts the authenticated user's chart from their stored birth data.
func (h *AstrologyHandler) BirthChart(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	chart, err := h.uc.BirthChart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chart, "Birth chart cast successfully")
}

// Dashas returns the authenticated user's Vimshottari timeline.
func (h *AstrologyHandler) Dashas(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dashas, err := h.uc.Dashas(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashas, "Dasha timeline computed successfully")
}
