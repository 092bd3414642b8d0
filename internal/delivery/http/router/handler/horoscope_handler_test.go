package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/middleware"
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/validator"
	mockRepo "github.com/sankalpsthakur/astronova-sub007/internal/mocks/repository"
	"github.com/sankalpsthakur/astronova-sub007/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHoroscopeHandler_Horoscope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewHoroscopeService(mockRepo.NewMockBookmarkRepository(t), logger)
	h := NewHoroscopeHandler(uc, logger)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/horoscope?sign=Leo&type=daily&date=2026-08-30")

	require.NoError(t, h.Horoscope(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Sign    string `json:"sign"`
			Content string `json:"content"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Leo", body.Data.Sign)
	assert.NotEmpty(t, body.Data.Content)
}

func TestHoroscopeHandler_Horoscope_SameQuerySameReading(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewHoroscopeService(mockRepo.NewMockBookmarkRepository(t), logger)
	h := NewHoroscopeHandler(uc, logger)

	c1, rec1 := newTestContext(t, http.MethodGet, "/api/v1/horoscope?sign=Aries&type=weekly&date=2026-08-26")
	require.NoError(t, h.Horoscope(c1))

	// A different day inside the same week maps to the same reading.
	c2, rec2 := newTestContext(t, http.MethodGet, "/api/v1/horoscope?sign=Aries&type=weekly&date=2026-08-28")
	require.NoError(t, h.Horoscope(c2))

	assert.JSONEq(t, rec1.Body.String(), rec2.Body.String())
}

func TestHoroscopeHandler_Horoscope_UnknownSignMapsToEnvelope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewHoroscopeService(mockRepo.NewMockBookmarkRepository(t), logger)
	h := NewHoroscopeHandler(uc, logger)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/horoscope?sign=Snake&type=daily")

	err := h.Horoscope(c)
	require.Error(t, err)

	middleware.NewErrorMiddleware(logger).HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestProfileHandler_GetProfile_MissingUserID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewProfileHandler(nil, logger)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/profile")

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/api/v1/health")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
