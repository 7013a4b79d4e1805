// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"net/http"
	"strings"

	"vexor/config"
	"vexor/internal/domain/entity"
	"vexor/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID   = "userID"
	contextKeyUserName = "userName"
	contextKeyRoles    = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		// Extract user ID
		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format in token"})
		}

		// Extract roles
		rolesClaim, _ := claims["roles"].([]any)
		var roles []string
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				roles = append(roles, roleStr)
			}
		}

		// Display name is optional; tokens without it are still valid
		userName, _ := claims["name"].(string)

		// Set user info on the context for handlers to use
		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyUserName, userName)
		c.Set(contextKeyRoles, roles)

		return next(c)
	}
}

// RequireStaff checks that the authenticated user carries a staff role
// (admin, supervisor, or super admin). It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		roles, ok := GetRoles(c)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
		}

		for _, role := range roles {
			if entity.Role(role).IsStaff() {
				return next(c)
			}
		}

		return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: staff role required"})
	}
}

// GetUserID returns the authenticated user's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetUserName returns the authenticated user's display name set by
// Authenticate. Empty when the token carries no name claim.
func GetUserName(c echo.Context) string {
	userName, _ := c.Get(contextKeyUserName).(string)

	return userName
}

// GetRoles returns the authenticated user's roles set by Authenticate.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}

// IsStaff reports whether the authenticated user carries any staff role.
func IsStaff(c echo.Context) bool {
	roles, ok := GetRoles(c)
	if !ok {
		return false
	}

	for _, role := range roles {
		if entity.Role(role).IsStaff() {
			return true
		}
	}

	return false
}
