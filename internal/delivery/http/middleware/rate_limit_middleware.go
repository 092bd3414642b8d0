package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/sankalpsthakur/astronova-sub007/config"
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// clientWindows tracks one client's counters over the current fixed windows.
type clientWindows struct {
	hourStart time.Time
	hourCount int
	dayStart  time.Time
	dayCount  int
}

// RateLimitMiddleware enforces per-client request quotas over fixed calendar
// windows. Clients are keyed by user ID when authenticated, by IP otherwise.
type RateLimitMiddleware struct {
	mu       sync.Mutex
	clients  map[string]*clientWindows
	pruneDay time.Time

	enabled bool
	perHour int
	perDay  int
	now     func() time.Time
}

// NewRateLimitMiddleware creates a new rate limiting middleware.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		clients: make(map[string]*clientWindows),
		now:     time.Now,
	}
	if cfg != nil && cfg.RateLimit != nil {
		m.enabled = cfg.RateLimit.Enabled
		m.perHour = cfg.RateLimit.PerHour
		m.perDay = cfg.RateLimit.PerDay
	}

	return m
}

// Limit counts the request against the client's hourly and daily windows and
// rejects it with 429 once either quota is spent.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		if ok, retryIn := m.allow(clientKey(c)); !ok {
			return response.TooManyRequests(c, "RATE_LIMITED",
				fmt.Sprintf("Request quota exceeded, retry in %s", retryIn.Round(time.Second)))
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(key string) (bool, time.Duration) {
	now := m.now()
	hourStart := now.Truncate(time.Hour)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.prune(dayStart)

	windows, ok := m.clients[key]
	if !ok {
		windows = &clientWindows{hourStart: hourStart, dayStart: dayStart}
		m.clients[key] = windows
	}

	if !windows.hourStart.Equal(hourStart) {
		windows.hourStart = hourStart
		windows.hourCount = 0
	}
	if !windows.dayStart.Equal(dayStart) {
		windows.dayStart = dayStart
		windows.dayCount = 0
	}

	if m.perDay > 0 && windows.dayCount >= m.perDay {
		return false, dayStart.AddDate(0, 0, 1).Sub(now)
	}
	if m.perHour > 0 && windows.hourCount >= m.perHour {
		return false, hourStart.Add(time.Hour).Sub(now)
	}

	windows.hourCount++
	windows.dayCount++

	return true, 0
}

// prune drops clients whose last counted request fell in an earlier day, so
// the map does not grow without bound across distinct IPs. The caller holds
// the mutex.
func (m *RateLimitMiddleware) prune(dayStart time.Time) {
	if m.pruneDay.Equal(dayStart) {
		return
	}
	m.pruneDay = dayStart

	for key, windows := range m.clients {
		if windows.dayStart.Before(dayStart) {
			delete(m.clients, key)
		}
	}
}

func clientKey(c echo.Context) string {
	if userID, ok := c.Get(KeyUserID).(uuid.UUID); ok {
		return "user:" + userID.String()
	}

	return "ip:" + c.RealIP()
}
