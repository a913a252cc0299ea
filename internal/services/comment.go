package services

import (
	"context"
	"errors"
	"fmt"

	"arca/internal/apperrors"
	"arca/internal/models"
	"arca/internal/utils/logger"

	"gorm.io/gorm"
)

// CommentService manages comment records and resolves comment chains.
// Chains are singly linked through NextCommentID; nothing in the schema
// prevents a cycle, so traversal keeps a visited set and fails rather
// than looping.
type CommentService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		db:  db,
		log: logger.New("comment_service"),
	}
}

func (s *CommentService) Create(ctx context.Context, comment *models.Comment) error {
	if err := s.requireUser(ctx, comment.UserID); err != nil {
		return err
	}
	if comment.NextCommentID != nil {
		if _, err := s.Get(ctx, *comment.NextCommentID); err != nil {
			return err
		}
	}
	return s.db.WithContext(ctx).Create(comment).Error
}

// Update mutates the text and the next pointer; nothing else.
func (s *CommentService) Update(ctx context.Context, id string, input *models.Comment) (*models.Comment, error) {
	comment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Text != "" {
		comment.Text = input.Text
	}
	if input.NextCommentID != nil {
		if _, err := s.Get(ctx, *input.NextCommentID); err != nil {
			return nil, err
		}
		comment.NextCommentID = input.NextCommentID
	}

	if err := s.db.WithContext(ctx).Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).
		First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("comment", id)
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) ListByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = false", userID).Find(&comments).Error
	return comments, err
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", id).Update("is_deleted", true).Error
}

// Chain materializes the linked chain starting at startID, oldest first.
// Every id in the chain must resolve; a repeated id aborts the walk with
// ErrCommentCycle so a malformed chain can never hang a request.
func (s *CommentService) Chain(ctx context.Context, startID string) ([]models.Comment, error) {
	var chain []models.Comment
	visited := make(map[string]struct{})

	currentID := startID
	for currentID != "" {
		if _, seen := visited[currentID]; seen {
			return nil, fmt.Errorf("chain revisits comment %s: %w", currentID, apperrors.ErrCommentCycle)
		}
		visited[currentID] = struct{}{}

		comment, err := s.Get(ctx, currentID)
		if err != nil {
			return nil, err
		}
		chain = append(chain, *comment)

		if comment.NextCommentID == nil {
			break
		}
		currentID = *comment.NextCommentID
	}

	return chain, nil
}

func (s *CommentService) requireUser(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND is_deleted = false", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("user", id)
	}
	return nil
}
