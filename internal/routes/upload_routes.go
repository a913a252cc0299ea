package routes

import (
	"time"

	"arca/internal/config"
	"arca/internal/handlers"
	"arca/internal/utils/logger"
	"arca/internal/utils/rate"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func SetupUploadRoutes(api *echo.Group, cfg *config.Config) {
	log := logger.New("upload_routes")

	// Per-user upload rate limit, shared across instances through redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	limiter := rate.NewLimiter(redisClient, rate.Config{
		Name: "uploads",
		Limit: rate.Limit{
			Window:    time.Minute,
			MaxEvents: 10,
		},
	})

	uploadHandler := handlers.NewUploadHandler(
		types.ObjectCannedACLAuthenticatedRead,
		limiter,
	)

	fileGroup := api.Group("/files")

	fileGroup.POST("/upload", uploadHandler.UploadFile)

	log.Success("Upload routes initialized successfully")
}
