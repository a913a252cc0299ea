package handlers

import (
	"net/http"

	"arca/internal/api/validator"
	"arca/internal/models"
	"arca/internal/services"
	"arca/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

// VideoHandler mirrors the article moderation surface for videos.
type VideoHandler struct {
	videos *services.VideoService
	log    *logger.Logger
}

func NewVideoHandler(videos *services.VideoService) *VideoHandler {
	return &VideoHandler{
		videos: videos,
		log:    logger.New("VideoHandler"),
	}
}

// Create submits a new video
// @Summary Submit a video
// @Description Submit a new video against a repository and school; it starts in PENDING status
// @Tags videos
// @Accept json
// @Produce json
// @Param request body validator.VideoRequest true "Video details"
// @Success 201 {object} models.Video
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Repository, user or school not found"
// @Router /api/videos [post]
func (h *VideoHandler) Create(c echo.Context) error {
	var req validator.VideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	video := models.Video{
		Title:        req.Title,
		Description:  req.Description,
		URL:          req.URL,
		URLThumbnail: req.URLThumbnail,
		RepositoryID: req.RepositoryID,
		UserID:       req.UserID,
		SchoolID:     req.SchoolID,
	}

	if err := h.videos.Create(c.Request().Context(), &video); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, video)
}

// Get returns a single video
// @Summary Get video
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} models.Video
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/videos/{id} [get]
func (h *VideoHandler) Get(c echo.Context) error {
	video, err := h.videos.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, video)
}

// List returns videos, filtered by school, user, repository or status
// @Summary List videos
// @Tags videos
// @Produce json
// @Param schoolId query string false "Filter by school"
// @Param userId query string false "Filter by submitter"
// @Param repositoryId query string false "Filter by repository"
// @Param status query string false "Filter by moderation status"
// @Success 200 {array} models.Video
// @Router /api/videos [get]
func (h *VideoHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	schoolID := c.QueryParam("schoolId")
	userID := c.QueryParam("userId")
	repositoryID := c.QueryParam("repositoryId")
	status := c.QueryParam("status")

	if status != "" && !models.IsValidModerationStatus(models.ModerationStatus(status)) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var (
		videos []models.Video
		err    error
	)
	switch {
	case schoolID != "" && status != "":
		videos, err = h.videos.ListBySchoolAndStatus(ctx, schoolID, models.ModerationStatus(status))
	case schoolID != "":
		videos, err = h.videos.ListBySchool(ctx, schoolID)
	case userID != "":
		videos, err = h.videos.ListByUser(ctx, userID)
	case repositoryID != "":
		videos, err = h.videos.ListByRepository(ctx, repositoryID)
	case status != "":
		videos, err = h.videos.ListByStatus(ctx, models.ModerationStatus(status))
	default:
		videos, err = h.videos.ListPending(ctx)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, videos)
}

// Update edits the descriptive fields of a video
// @Summary Update video
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} models.Video
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/videos/{id} [put]
func (h *VideoHandler) Update(c echo.Context) error {
	var input models.Video
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	video, err := h.videos.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, video)
}

// Approve transitions a video to APPROVED
// @Summary Approve video
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} models.Video
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/videos/{id}/approve [put]
func (h *VideoHandler) Approve(c echo.Context) error {
	video, err := h.videos.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, video)
}

// Reject transitions a video to REJECTED. The reason field is accepted
// but not stored; see VideoService.Reject.
// @Summary Reject video
// @Tags videos
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body validator.ModerationRequest false "Rejection reason"
// @Success 200 {object} models.Video
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/videos/{id}/reject [put]
func (h *VideoHandler) Reject(c echo.Context) error {
	var req validator.ModerationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	video, err := h.videos.Reject(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, video)
}
