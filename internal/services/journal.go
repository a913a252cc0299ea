package services

import (
	"context"
	"time"

	"arca/internal/models"
	"arca/internal/utils/logger"

	"gorm.io/gorm"
)

// JournalService covers the journal queries the workflows and the public
// surface need beyond plain CRUD.
type JournalService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{
		db:  db,
		log: logger.New("journal_service"),
	}
}

func (s *JournalService) ListByStatus(ctx context.Context, status string) ([]models.Journal, error) {
	var journals []models.Journal
	err := s.db.WithContext(ctx).
		Where("status = ? AND is_deleted = false", status).Find(&journals).Error
	return journals, err
}

func (s *JournalService) ListBySchool(ctx context.Context, schoolID string) ([]models.Journal, error) {
	var journals []models.Journal
	err := s.db.WithContext(ctx).
		Where("school_id = ? AND is_deleted = false", schoolID).Find(&journals).Error
	return journals, err
}

func (s *JournalService) ListByRepository(ctx context.Context, repositoryID string) ([]models.Journal, error) {
	var journals []models.Journal
	err := s.db.WithContext(ctx).
		Where("repository_id = ? AND is_deleted = false", repositoryID).Find(&journals).Error
	return journals, err
}

// CloseExpired flips OPEN journals whose closing date has passed to
// CLOSED. Called from the periodic journal:close task.
func (s *JournalService) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Journal{}).
		Where("status = ? AND closing_date IS NOT NULL AND closing_date < ? AND is_deleted = false",
			models.JournalStatusOpen, now.Format("2006-01-02")).
		Update("status", models.JournalStatusClosed)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		s.log.Info("closed %d expired journals", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
