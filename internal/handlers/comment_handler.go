package handlers

import (
	"net/http"

	"arca/internal/api/validator"
	"arca/internal/models"
	"arca/internal/services"
	"arca/internal/utils/logger"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct {
	comments *services.CommentService
	log      *logger.Logger
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		log:      logger.New("CommentHandler"),
	}
}

// Create stores a new comment
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body validator.CommentRequest true "Comment details"
// @Success 201 {object} models.Comment
// @Failure 404 {object} map[string]string "User or next comment not found"
// @Router /api/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req validator.CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	comment := models.Comment{
		UserID:        req.UserID,
		Text:          req.Text,
		NextCommentID: req.NextCommentID,
	}

	if err := h.comments.Create(c.Request().Context(), &comment); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

// Get returns a single comment
// @Summary Get comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.comments.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// List returns comments by author
// @Summary List comments
// @Tags comments
// @Produce json
// @Param userId query string true "Filter by author"
// @Success 200 {array} models.Comment
// @Router /api/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId query parameter is required")
	}

	comments, err := h.comments.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Chain returns the full comment chain starting at a comment
// @Summary Get comment chain
// @Description Walks the next-comment links and returns the chain in order. A chain that loops back on itself is rejected.
// @Tags comments
// @Produce json
// @Param id path string true "First comment ID"
// @Success 200 {array} models.Comment
// @Failure 404 {object} map[string]string "Comment not found"
// @Failure 422 {object} map[string]string "Chain contains a cycle"
// @Router /api/comments/{id}/chain [get]
func (h *CommentHandler) Chain(c echo.Context) error {
	chain, err := h.comments.Chain(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chain)
}

// Update edits a comment's text or next pointer
// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	var input models.Comment
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.comments.Update(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete soft-deletes a comment
// @Summary Delete comment
// @Tags comments
// @Param id path string true "Comment ID"
// @Success 204 "No content"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.comments.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
