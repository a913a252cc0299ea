package middleware

import (
	"net/http"

	"arca/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireURLPermission authorizes requests against the user's URL pattern
// grants. The decision is made on the request path: any pattern attached
// to any of the user's roles that matches the path lets the request
// through; no match means 403.
func RequireURLPermission(ps *services.PermissionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := GetUserEmail(c)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authenticated identity")
			}

			allowed, err := ps.HasAPIPermission(c.Request().Context(), email, c.Request().URL.Path)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve permissions")
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}

			return next(c)
		}
	}
}
