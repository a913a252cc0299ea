package api

import (
	"arca/internal/api/middleware"
	"arca/internal/api/registry"
	"arca/internal/routes"
	"arca/internal/services"
	"net/http"

	_ "arca/docs/swagger"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Arca API")
	})
	// Health check
	// @Summary Health check
	// @Description Check if the server is running
	// @Accept json
	// @Produce json
	// @Success 200 {object} map[string]string "OK"
	// @Router /health [get]
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// API group: authentication first, then URL pattern authorization
	api := s.echo.Group("/api")
	auth := middleware.NewAuthMiddleware(s.config.JWT.Secret)
	api.Use(auth.Middleware())

	permissionService := services.NewPermissionService(s.db)
	api.Use(middleware.RequireURLPermission(permissionService))

	// Register CRUD routes for the catalog models
	registry.RegisterCRUDRoutes(api, s.db)

	// Moderated content workflows
	routes.SetupContentRoutes(api, s.db)

	routes.SetupUploadRoutes(api, s.config)
}
