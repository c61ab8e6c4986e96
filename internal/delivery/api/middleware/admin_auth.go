package middleware

import (
	"slices"
	"strings"

	"ipay4u/internal/delivery/api/response"
	"ipay4u/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyAdminID = "adminID"
	contextKeyRoles   = "roles"
)

// AdminAuthMiddleware provides middleware for JWT authentication and authorization of operators.
type AdminAuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAdminAuthMiddleware is the constructor for AdminAuthMiddleware.
func NewAdminAuthMiddleware(tokenSvc service.TokenService) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the operator on the context.
func (m *AdminAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyAdminID, claims.AdminID)
		c.Set(contextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the operator holds requiredRole. It must be used after Authenticate.
func (m *AdminAuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// GetAdminID returns the operator id set by Authenticate.
func GetAdminID(c echo.Context) (uuid.UUID, bool) {
	adminID, ok := c.Get(contextKeyAdminID).(uuid.UUID)

	return adminID, ok
}

// GetRoles returns the operator roles set by Authenticate.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}
