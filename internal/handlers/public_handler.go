package handlers

import (
	"net/http"

	"arca/internal/models"
	"arca/internal/services"
	"arca/internal/utils/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PublicHandler serves the unauthenticated surface: site statistics and
// the published content feeds. Moderation state is evaluated fresh per
// request, so closing a journal immediately hides its articles.
type PublicHandler struct {
	db       *gorm.DB
	articles *services.ArticleService
	videos   *services.VideoService
	journals *services.JournalService
	log      *logger.Logger

	schools      services.BaseService[models.School]
	users        services.BaseService[models.User]
	documents    services.BaseService[models.Document]
	repositories services.BaseService[models.Repository]
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{
		db:           db,
		articles:     services.NewArticleService(db),
		videos:       services.NewVideoService(db),
		journals:     services.NewJournalService(db),
		log:          logger.New("PublicHandler"),
		schools:      services.NewBaseService(db, models.School{}),
		users:        services.NewBaseService(db, models.User{}),
		documents:    services.NewBaseService(db, models.Document{}),
		repositories: services.NewBaseService(db, models.Repository{}),
	}
}

// Stats returns headline counts for the landing page
// @Summary Site statistics
// @Description Counts of schools, users, documents and published content
// @Tags public
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /public/stats [get]
func (h *PublicHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	schools, err := h.schools.Count(ctx)
	if err != nil {
		return err
	}
	users, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	documents, err := h.documents.Count(ctx)
	if err != nil {
		return err
	}

	var articles, videos int64
	if err := h.db.WithContext(ctx).Model(&models.Article{}).
		Where("status = ? AND is_deleted = false", models.ModerationStatusApproved).
		Count(&articles).Error; err != nil {
		return err
	}
	if err := h.db.WithContext(ctx).Model(&models.Video{}).
		Where("status = ? AND is_deleted = false", models.ModerationStatusApproved).
		Count(&videos).Error; err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int64{
		"schools":   schools,
		"users":     users,
		"documents": documents,
		"articles":  articles,
		"videos":    videos,
	})
}

// Articles returns the public article feed
// @Summary Published articles
// @Description Approved articles whose journal is currently open
// @Tags public
// @Produce json
// @Success 200 {array} models.Article
// @Router /public/articles [get]
func (h *PublicHandler) Articles(c echo.Context) error {
	articles, err := h.articles.ApprovedInOpenJournals(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// Videos returns the public video feed
// @Summary Published videos
// @Description Approved videos, optionally filtered by school
// @Tags public
// @Produce json
// @Param schoolId query string false "Filter by school"
// @Success 200 {array} models.Video
// @Router /public/videos [get]
func (h *PublicHandler) Videos(c echo.Context) error {
	ctx := c.Request().Context()

	schoolID := c.QueryParam("schoolId")
	if schoolID != "" {
		videos, err := h.videos.ListBySchoolAndStatus(ctx, schoolID, models.ModerationStatusApproved)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, videos)
	}

	videos, err := h.videos.ListByStatus(ctx, models.ModerationStatusApproved)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, videos)
}

// Journals returns the currently open journals
// @Summary Open journals
// @Tags public
// @Produce json
// @Success 200 {array} models.Journal
// @Router /public/journals [get]
func (h *PublicHandler) Journals(c echo.Context) error {
	journals, err := h.journals.ListByStatus(c.Request().Context(), models.JournalStatusOpen)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, journals)
}

// Repositories returns repositories, optionally filtered by type
// @Summary List repositories
// @Tags public
// @Produce json
// @Param type query string false "Repository type (CEDOC, PEDAGOGICO, SAO_LEO_EM_CINE)"
// @Success 200 {array} models.Repository
// @Router /public/repositories [get]
func (h *PublicHandler) Repositories(c echo.Context) error {
	ctx := c.Request().Context()

	filters := map[string]interface{}{}
	if t := c.QueryParam("type"); t != "" {
		filters["type"] = t
	}

	repositories, _, err := h.repositories.List(ctx, 0, 0, filters, nil, nil, "")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, repositories)
}
