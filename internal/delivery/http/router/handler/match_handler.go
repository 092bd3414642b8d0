package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MatchHandler holds dependencies for Kundali match handlers.
type MatchHandler struct {
	uc     usecase.MatchUsecase
	logger *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler, injected by Fx.
func NewMatchHandler(uc usecase.MatchUsecase, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{uc: uc, logger: logger}
}

type computeMatchRequest struct {
	PartnerName string  `json:"partner_name" validate:"required"`
	BirthDate   string  `json:"birth_date" validate:"required"` // YYYY-MM-DD
	BirthTime   *string `json:"birth_time,omitempty"`
	BirthPlace  string  `json:"birth_place"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	Timezone    string  `json:"timezone"`
}

// Compute scores the authenticated user's chart against a partner's birth data.
func (h *MatchHandler) Compute(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req computeMatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid match input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Birth date must be formatted YYYY-MM-DD")
	}

	match, err := h.uc.ComputeMatch(c.Request().Context(), userID, &usecase.MatchInput{
		PartnerName: req.PartnerName,
		BirthDate:   birthDate,
		BirthTime:   req.BirthTime,
		Place:       req.BirthPlace,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Timezone:    req.Timezone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, match, "Match computed successfully")
}

// List returns the authenticated user's stored matches.
func (h *MatchHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matches, err := h.uc.ListMatches(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, matches, "Matches retrieved successfully")
}

// Get returns one stored match.
func (h *MatchHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Match ID must be a UUID")
	}

	match, err := h.uc.GetMatch(c.Request().Context(), userID, matchID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, match, "Match retrieved successfully")
}

// Delete removes a stored match.
func (h *MatchHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	matchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Match ID must be a UUID")
	}

	if err := h.uc.DeleteMatch(c.Request().Context(), userID, matchID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Match deleted"}, "Match deleted successfully")
}
