package routes

import (
	"arca/internal/handlers"
	"arca/internal/services"
	"arca/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SetupContentRoutes registers the moderated content workflows: article
// and video submission plus approve/reject, and comment chains. These
// routes sit behind the auth and URL permission middleware of the parent
// group.
func SetupContentRoutes(api *echo.Group, db *gorm.DB) {
	log := logger.New("content_routes")

	articleHandler := handlers.NewArticleHandler(services.NewArticleService(db))
	videoHandler := handlers.NewVideoHandler(services.NewVideoService(db))
	commentHandler := handlers.NewCommentHandler(services.NewCommentService(db))

	articles := api.Group("/articles")
	articles.POST("", articleHandler.Create)
	articles.GET("", articleHandler.List)
	articles.GET("/:id", articleHandler.Get)
	articles.PUT("/:id", articleHandler.Update)
	articles.PUT("/:id/approve", articleHandler.Approve)
	articles.PUT("/:id/reject", articleHandler.Reject)

	videos := api.Group("/videos")
	videos.POST("", videoHandler.Create)
	videos.GET("", videoHandler.List)
	videos.GET("/:id", videoHandler.Get)
	videos.PUT("/:id", videoHandler.Update)
	videos.PUT("/:id/approve", videoHandler.Approve)
	videos.PUT("/:id/reject", videoHandler.Reject)

	comments := api.Group("/comments")
	comments.POST("", commentHandler.Create)
	comments.GET("", commentHandler.List)
	comments.GET("/:id", commentHandler.Get)
	comments.GET("/:id/chain", commentHandler.Chain)
	comments.PUT("/:id", commentHandler.Update)
	comments.DELETE("/:id", commentHandler.Delete)

	log.Success("Content routes initialized successfully")
}
