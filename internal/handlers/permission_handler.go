package handlers

import (
	"net/http"
	"sort"

	"arca/internal/services"
	"arca/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

// PermissionHandler exposes the authenticated user's own URL grants so
// frontends can decide which screens to render.
type PermissionHandler struct {
	permissions *services.PermissionService
	log         *logger.Logger
}

func NewPermissionHandler(permissions *services.PermissionService) *PermissionHandler {
	return &PermissionHandler{
		permissions: permissions,
		log:         logger.New("PermissionHandler"),
	}
}

// GetMyPermissions returns the aggregated URL patterns of the current user
// @Summary Get current user's permissions
// @Description Returns the aggregated API and client URL patterns granted through the user's roles
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/permissions [get]
func (h *PermissionHandler) GetMyPermissions(c echo.Context) error {
	email, ok := c.Get("email").(string)
	if !ok || email == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing authenticated identity"})
	}

	ctx := c.Request().Context()

	api, err := h.permissions.UserAPIPermissions(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve permissions"})
	}
	client, err := h.permissions.UserClientPermissions(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve permissions"})
	}

	return c.JSON(http.StatusOK, map[string][]string{
		"api":    sortedPatterns(api),
		"client": sortedPatterns(client),
	})
}

func sortedPatterns(set map[string]struct{}) []string {
	patterns := make([]string, 0, len(set))
	for p := range set {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	return patterns
}
