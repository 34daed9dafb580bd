// Package middleware contains the HTTP middleware of the API surface.
package middleware

import (
	"strings"

	"stockhub/internal/delivery/http/response"
	"stockhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware.
const (
	ContextKeyTenantID = "tenantID"
	ContextKeyUsername = "username"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the tenant identity on
// the request context. Session and short-lived action tokens both pass.
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

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(ContextKeyTenantID, claims.TenantID)
		c.Set(ContextKeyUsername, claims.Username)

		return next(c)
	}
}

// AuthenticateSigning validates the delegated signing token the request
// carries itself, so the signer needs no session. The QR link puts the token
// in the token query parameter; a bearer header works too.
func (m *AuthMiddleware) AuthenticateSigning(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := c.QueryParam("token")
		if tokenString == "" {
			authHeader := c.Request().Header.Get("Authorization")
			if trimmed := strings.TrimPrefix(authHeader, "Bearer "); trimmed != authHeader {
				tokenString = trimmed
			}
		}
		if tokenString == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "A signing token is required")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(ContextKeyTenantID, claims.TenantID)
		c.Set(ContextKeyUsername, claims.Username)

		return next(c)
	}
}

// TenantID extracts the authenticated tenant id set by Authenticate.
func TenantID(c echo.Context) (uuid.UUID, bool) {
	tenantID, ok := c.Get(ContextKeyTenantID).(uuid.UUID)

	return tenantID, ok
}
