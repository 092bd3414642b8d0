package middleware

import (
	"strings"

	"github.com/sankalpsthakur/astronova-sub007/internal/delivery/http/response"
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo.Context key handlers read the authenticated user from.
const KeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the user ID on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_EXPIRED", "Invalid or expired token")
		}

		c.Set(KeyUserID, claims.UserID)

		return next(c)
	}
}
