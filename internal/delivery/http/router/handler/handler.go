// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/middleware"
	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)

	return userID, ok
}

// userResponse is the account shape returned to clients. Tokens and
// credentials never appear here.
type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func userView(u *entity.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
