package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedEcho(t *testing.T, perHour, perDay int, userID uuid.UUID) (*echo.Echo, *RateLimitMiddleware) {
	t.Helper()

	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: true, PerHour: perHour, PerDay: perDay},
	})

	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID != uuid.Nil {
				c.Set(KeyUserID, userID)
			}

			return next(c)
		}
	}, m.Limit)

	return e, m
}

func doPing(e *echo.Echo) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code
}

func TestRateLimitMiddleware_HourlyQuota(t *testing.T) {
	e, _ := newRateLimitedEcho(t, 3, 100, uuid.New())

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, doPing(e))
	}

	assert.Equal(t, http.StatusTooManyRequests, doPing(e))
}

func TestRateLimitMiddleware_DailyQuotaOutlastsHourReset(t *testing.T) {
	e, m := newRateLimitedEcho(t, 100, 5, uuid.New())

	current := time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, doPing(e))
	}
	require.Equal(t, http.StatusTooManyRequests, doPing(e))

	// A new hour does not clear the daily window.
	current = current.Add(time.Hour)
	assert.Equal(t, http.StatusTooManyRequests, doPing(e))

	// A new day does.
	current = current.AddDate(0, 0, 1)
	assert.Equal(t, http.StatusOK, doPing(e))
}

func TestRateLimitMiddleware_ClientsCountedSeparately(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: true, PerHour: 1, PerDay: 10},
	})

	userA := uuid.New()
	userB := uuid.New()

	ok, _ := m.allow("user:" + userA.String())
	require.True(t, ok)
	ok, _ = m.allow("user:" + userA.String())
	require.False(t, ok)

	ok, _ = m.allow("user:" + userB.String())
	assert.True(t, ok)
}

func TestRateLimitMiddleware_PrunesStaleClients(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: true, PerHour: 100, PerDay: 100},
	})

	current := time.Date(2024, 6, 3, 10, 30, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	for i := 0; i < 50; i++ {
		ok, _ := m.allow("ip:10.0.0." + strconv.Itoa(i))
		require.True(t, ok)
	}
	require.Len(t, m.clients, 50)

	// The next day's first request sweeps out every client that last
	// appeared before that day.
	current = current.AddDate(0, 0, 1)
	ok, _ := m.allow("ip:10.0.1.1")
	require.True(t, ok)

	assert.Len(t, m.clients, 1)
}

func TestRateLimitMiddleware_DisabledPassesThrough(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: false, PerHour: 1, PerDay: 1},
	})

	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, m.Limit)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
