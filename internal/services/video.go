package services

import (
	"context"
	"errors"

	"arca/internal/apperrors"
	"arca/internal/events"
	"arca/internal/models"
	"arca/internal/utils/logger"

	"gorm.io/gorm"
)

// VideoService mirrors the article workflow for video submissions. Unlike
// articles, a rejection reason is accepted by the API but not persisted;
// the video model has no field for it.
type VideoService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{
		db:  db,
		log: logger.New("video_service"),
	}
}

// Create stores a new video with status forced to PENDING. The referenced
// repository, user and school must all exist.
func (s *VideoService) Create(ctx context.Context, video *models.Video) error {
	if video.RepositoryID == "" {
		return apperrors.Validation("repository id is required")
	}
	if video.UserID == "" {
		return apperrors.Validation("user id is required")
	}
	if video.SchoolID == "" {
		return apperrors.Validation("school id is required")
	}

	if err := s.requireExists(ctx, &models.Repository{}, "repository", video.RepositoryID); err != nil {
		return err
	}
	if err := s.requireExists(ctx, &models.User{}, "user", video.UserID); err != nil {
		return err
	}
	if err := s.requireExists(ctx, &models.School{}, "school", video.SchoolID); err != nil {
		return err
	}

	video.Status = models.ModerationStatusPending

	return s.db.WithContext(ctx).Create(video).Error
}

// Update mutates descriptive fields only; status transitions go through
// Approve and Reject.
func (s *VideoService) Update(ctx context.Context, id string, input *models.Video) (*models.Video, error) {
	video, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}
	if input.URL != "" {
		video.URL = input.URL
	}
	if input.URLThumbnail != "" {
		video.URLThumbnail = input.URLThumbnail
	}
	if input.RepositoryID != "" {
		if err := s.requireExists(ctx, &models.Repository{}, "repository", input.RepositoryID); err != nil {
			return nil, err
		}
		video.RepositoryID = input.RepositoryID
	}
	if input.CommentID != "" {
		if err := s.requireExists(ctx, &models.Comment{}, "comment", input.CommentID); err != nil {
			return nil, err
		}
		video.CommentID = input.CommentID
	}

	if err := s.db.WithContext(ctx).Save(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func (s *VideoService) Approve(ctx context.Context, id string) (*models.Video, error) {
	video, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	video.Status = models.ModerationStatusApproved
	if err := s.db.WithContext(ctx).Save(video).Error; err != nil {
		return nil, err
	}

	events.Emit("video.approved", video)
	return video, nil
}

// Reject transitions a video to REJECTED. The reason is accepted but not
// stored anywhere.
func (s *VideoService) Reject(ctx context.Context, id, reason string) (*models.Video, error) {
	video, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	video.Status = models.ModerationStatusRejected
	if err := s.db.WithContext(ctx).Save(video).Error; err != nil {
		return nil, err
	}

	if reason != "" {
		s.log.Warn("rejection reason for video %s is not persisted", id)
	}

	events.Emit("video.rejected", video)
	return video, nil
}

func (s *VideoService) Get(ctx context.Context, id string) (*models.Video, error) {
	var video models.Video
	if err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).
		First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("video", id)
		}
		return nil, err
	}
	return &video, nil
}

func (s *VideoService) ListBySchool(ctx context.Context, schoolID string) ([]models.Video, error) {
	return s.list(ctx, "school_id = ?", schoolID)
}

func (s *VideoService) ListByUser(ctx context.Context, userID string) ([]models.Video, error) {
	return s.list(ctx, "user_id = ?", userID)
}

func (s *VideoService) ListByRepository(ctx context.Context, repositoryID string) ([]models.Video, error) {
	return s.list(ctx, "repository_id = ?", repositoryID)
}

func (s *VideoService) ListByStatus(ctx context.Context, status models.ModerationStatus) ([]models.Video, error) {
	return s.list(ctx, "status = ?", status)
}

func (s *VideoService) ListBySchoolAndStatus(ctx context.Context, schoolID string, status models.ModerationStatus) ([]models.Video, error) {
	return s.list(ctx, "school_id = ? AND status = ?", schoolID, status)
}

func (s *VideoService) ListPending(ctx context.Context) ([]models.Video, error) {
	return s.ListByStatus(ctx, models.ModerationStatusPending)
}

func (s *VideoService) list(ctx context.Context, query string, args ...interface{}) ([]models.Video, error) {
	var videos []models.Video
	err := s.db.WithContext(ctx).Where("is_deleted = false").
		Where(query, args...).Find(&videos).Error
	return videos, err
}

func (s *VideoService) requireExists(ctx context.Context, model interface{}, kind, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(model).
		Where("id = ? AND is_deleted = false", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound(kind, id)
	}
	return nil
}
