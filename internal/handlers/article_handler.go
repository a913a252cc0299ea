package handlers

import (
	"net/http"

	"arca/internal/api/validator"
	"arca/internal/models"
	"arca/internal/services"
	"arca/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

// ArticleHandler exposes the article submission and moderation workflow.
// Service errors are returned as-is; the server's error handler maps the
// taxonomy onto status codes.
type ArticleHandler struct {
	articles *services.ArticleService
	log      *logger.Logger
}

func NewArticleHandler(articles *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articles: articles,
		log:      logger.New("ArticleHandler"),
	}
}

// Create submits a new article to a journal
// @Summary Submit an article
// @Description Submit a new article to an open journal; it starts in PENDING status
// @Tags articles
// @Accept json
// @Produce json
// @Param request body validator.ArticleRequest true "Article details"
// @Success 201 {object} models.Article
// @Failure 400 {object} map[string]string "Journal not open or invalid input"
// @Failure 404 {object} map[string]string "Journal or user not found"
// @Router /api/articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req validator.ArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	article := models.Article{
		JournalID: req.JournalID,
		Authors:   req.Authors,
		Title:     req.Title,
		URL:       req.URL,
		UserID:    req.UserID,
		CommentID: req.CommentID,
	}

	if err := h.articles.Create(c.Request().Context(), &article); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, article)
}

// Get returns a single article
// @Summary Get article
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.articles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// List returns articles, filtered by journal, user or status
// @Summary List articles
// @Tags articles
// @Produce json
// @Param journalId query string false "Filter by journal"
// @Param userId query string false "Filter by submitter"
// @Param status query string false "Filter by moderation status"
// @Success 200 {array} models.Article
// @Router /api/articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	journalID := c.QueryParam("journalId")
	userID := c.QueryParam("userId")
	status := c.QueryParam("status")

	if status != "" && !models.IsValidModerationStatus(models.ModerationStatus(status)) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var (
		articles []models.Article
		err      error
	)
	switch {
	case journalID != "" && status != "":
		articles, err = h.articles.ListByJournalAndStatus(ctx, journalID, models.ModerationStatus(status))
	case journalID != "":
		articles, err = h.articles.ListByJournal(ctx, journalID)
	case userID != "":
		articles, err = h.articles.ListByUser(ctx, userID)
	case status != "":
		articles, err = h.articles.ListByStatus(ctx, models.ModerationStatus(status))
	default:
		articles, err = h.articles.ListPending(ctx)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, articles)
}

// Update edits the descriptive fields of an article
// @Summary Update article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var input models.Article
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articles.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Approve transitions an article to APPROVED
// @Summary Approve article
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/articles/{id}/approve [put]
func (h *ArticleHandler) Approve(c echo.Context) error {
	article, err := h.articles.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// Reject transitions an article to REJECTED, optionally recording a
// reason as a comment linked to the article
// @Summary Reject article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body validator.ModerationRequest false "Rejection reason"
// @Success 200 {object} models.Article
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/articles/{id}/reject [put]
func (h *ArticleHandler) Reject(c echo.Context) error {
	var req validator.ModerationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articles.Reject(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}
