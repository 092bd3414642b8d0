package handler

import (
	"log/slog"
	"net/http"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiscoverHandler serves the shared home screen snapshot.
type DiscoverHandler struct {
	uc     usecase.DiscoverUsecase
	logger *slog.Logger
}

// NewDiscoverHandler is the constructor for DiscoverHandler, injected by Fx.
func NewDiscoverHandler(uc usecase.DiscoverUsecase, logger *slog.Logger) *DiscoverHandler {
	return &DiscoverHandler{uc: uc, logger: logger}
}

// Discover returns the current snapshot, cached within its TTL.
func (h *DiscoverHandler) Discover(c echo.Context) error {
	snapshot, err := h.uc.Discover(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Snapshot retrieved successfully")
}
