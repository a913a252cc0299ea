package routes

import (
	"arca/internal/handlers"
	"arca/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated surface.
func SetupPublicRoutes(e *echo.Echo, db *gorm.DB) {
	log := logger.New("public_routes")

	publicHandler := handlers.NewPublicHandler(db)

	public := e.Group("/public")
	public.GET("/stats", publicHandler.Stats)
	public.GET("/articles", publicHandler.Articles)
	public.GET("/videos", publicHandler.Videos)
	public.GET("/journals", publicHandler.Journals)
	public.GET("/repositories", publicHandler.Repositories)

	log.Success("Public routes initialized successfully")
}
