package routes

import (
	"arca/internal/api/middleware"
	"arca/internal/config"
	"arca/internal/handlers"
	"arca/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func SetupAuthRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db)
	permissionHandler := handlers.NewPermissionHandler(services.NewPermissionService(db))

	// Public auth routes group
	auth := e.Group("/auth")

	// Public routes (no auth required)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected auth routes (require authentication but no URL grant:
	// any logged-in user may inspect their own identity and grants)
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)
	protectedAuth := auth.Group("")
	protectedAuth.Use(authMiddleware.Middleware())

	protectedAuth.GET("/me", authHandler.GetMe)
	protectedAuth.GET("/permissions", permissionHandler.GetMyPermissions)
}
