package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

type updateProfileRequest struct {
	FullName   string  `json:"full_name" validate:"required"`
	BirthDate  string  `json:"birth_date" validate:"required"` // YYYY-MM-DD
	BirthTime  *string `json:"birth_time,omitempty"`           // HH:MM, omitted when unknown
	BirthPlace string  `json:"birth_place" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64 `json:"longitude" validate:"min=-180,max=180"`
	Timezone   string  `json:"timezone" validate:"required"`
}

type profileResponse struct {
	FullName           string     `json:"full_name"`
	BirthDate          string     `json:"birth_date"`
	BirthTime          *string    `json:"birth_time,omitempty"`
	BirthPlace         string     `json:"birth_place"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	Timezone           string     `json:"timezone"`
	SunSign            string     `json:"sun_sign"`
	MoonSign           string     `json:"moon_sign"`
	RisingSign         string     `json:"rising_sign,omitempty"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry,omitempty"`
}

func profileView(p *entity.Profile) profileResponse {
	return profileResponse{
		FullName:           p.FullName,
		BirthDate:          p.Birth.Date.Format("2006-01-02"),
		BirthTime:          p.Birth.Time,
		BirthPlace:         p.Birth.Place,
		Latitude:           p.Birth.Latitude,
		Longitude:          p.Birth.Longitude,
		Timezone:           p.Birth.Timezone,
		SunSign:            p.SunSign,
		MoonSign:           p.MoonSign,
		RisingSign:         p.RisingSign,
		SubscriptionExpiry: p.SubscriptionExpiry,
	}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileView(profile), "Profile retrieved successfully")
}

// UpdateProfile stores birth data and returns the recomputed profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Birth date must be formatted YYYY-MM-DD")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FullName:  req.FullName,
		BirthDate: birthDate,
		BirthTime: req.BirthTime,
		Place:     req.BirthPlace,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileView(profile), "Profile updated successfully")
}
