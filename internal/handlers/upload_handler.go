package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"arca/internal/utils/logger"
	"arca/internal/utils/rate"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	log     *logger.Logger
	acl     types.ObjectCannedACL
	limiter *rate.Limiter
}

func NewUploadHandler(acl types.ObjectCannedACL, limiter *rate.Limiter) *UploadHandler {
	if acl == "" {
		acl = types.ObjectCannedACLPublicRead
	}
	return &UploadHandler{
		log:     logger.New("upload_handler"),
		acl:     acl,
		limiter: limiter,
	}
}

// UploadFile handles file uploads to S3
// @Summary Upload a file
// @Description Upload a file to object storage and return its URL
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} map[string]string "File uploaded successfully"
// @Failure 400 {object} map[string]string "Validation error or file not found"
// @Failure 429 {object} map[string]string "Upload rate exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/files/upload [post]
func (h *UploadHandler) UploadFile(c echo.Context) error {

	contentType := c.Request().Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Content-Type must be multipart/form-data",
		})
	}

	if h.limiter != nil {
		userID, _ := c.Get("userID").(string)
		allowed, err := h.limiter.Allow(c.Request().Context(), userID)
		if err != nil {
			h.log.Error("Failed to check upload rate limit", err)
		} else if !allowed {
			return c.JSON(http.StatusTooManyRequests, map[string]string{
				"error": "Upload rate exceeded, try again later",
			})
		}
	}

	storage := GetStorageHandler()
	if storage == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Storage handler not configured",
		})
	}

	// Get file from request
	file, err := c.FormFile("file")
	if err != nil {
		h.log.Error("Failed to get file from request", err)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "No file provided",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to read file",
		})
	}

	url, err := storage.UploadFile(c.Request().Context(), content, file.Filename, h.acl, file.Header.Get("Content-Type"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to upload file",
		})
	}

	h.log.Success("File uploaded successfully: %s", url)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "File uploaded successfully",
		"url":     url,
		"path":    url[strings.LastIndex(url, "/")+1:],
	})
}
