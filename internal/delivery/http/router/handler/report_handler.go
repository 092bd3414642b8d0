package handler

import (
	"log/slog"
	"net/http"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for detailed report handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, logger: logger}
}

type requestReportRequest struct {
	Type string `json:"type" validate:"required"`
}

// Request enqueues report generation and returns it in pending status.
func (h *ReportHandler) Request(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req requestReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.uc.RequestReport(c.Request().Context(), userID, entity.ReportType(req.Type))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, report, "Report generation started")
}

// List returns the authenticated user's reports.
func (h *ReportHandler) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reports, err := h.uc.ListReports(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reports, "Reports retrieved successfully")
}

// Get returns one report with its current status and content.
func (h *ReportHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Report ID must be a UUID")
	}

	report, err := h.uc.GetReport(c.Request().Context(), userID, reportID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Report retrieved successfully")
}
