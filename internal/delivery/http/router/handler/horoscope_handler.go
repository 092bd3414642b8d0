package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HoroscopeHandler holds dependencies for horoscope and bookmark handlers.
type HoroscopeHandler struct {
	uc     usecase.HoroscopeUsecase
	logger *slog.Logger
}

// NewHoroscopeHandler is the constructor for HoroscopeHandler, injected by Fx.
func NewHoroscopeHandler(uc usecase.HoroscopeUsecase, logger *slog.Logger) *HoroscopeHandler {
	return &HoroscopeHandler{uc: uc, logger: logger}
}

// Horoscope returns the deterministic reading for a sign, period and date.
func (h *HoroscopeHandler) Horoscope(c echo.Context) error {
	sign := c.QueryParam("sign")
	period := entity.HoroscopePeriod(c.QueryParam("type"))

	date, ok := parseDateParam(c, "date")
	if !ok {
		return response.BadRequest(c, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
	}

	reading, err := h.uc.Horoscope(c.Request().Context(), sign, period, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reading, "Horoscope retrieved successfully")
}

type createBookmarkRequest struct {
	Date    string `json:"date" validate:"required"` // YYYY-MM-DD
	Type    string `json:"type" validate:"required"`
	Sign    string `json:"sign" validate:"required"`
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

// CreateBookmark saves a reading for the authenticated user.
func (h *HoroscopeHandler) CreateBookmark(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Date must be formatted YYYY-MM-DD")
	}

	bookmark, err := h.uc.CreateBookmark(c.Request().Context(), userID, &usecase.BookmarkInput{
		Date:    date,
		Period:  entity.HoroscopePeriod(req.Type),
		Sign:    req.Sign,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, bookmark, "Bookmark created successfully")
}

// ListBookmarks returns the authenticated user's saved readings.
func (h *HoroscopeHandler) ListBookmarks(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarks, err := h.uc.ListBookmarks(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bookmarks, "Bookmarks retrieved successfully")
}

// DeleteBookmark removes a saved reading.
func (h *HoroscopeHandler) DeleteBookmark(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Bookmark ID must be a UUID")
	}

	if err := h.uc.DeleteBookmark(c.Request().Context(), userID, bookmarkID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Bookmark deleted"}, "Bookmark deleted successfully")
}
