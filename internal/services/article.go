package services

import (
	"context"
	"errors"
	"strings"

	"arca/internal/apperrors"
	"arca/internal/events"
	"arca/internal/models"
	"arca/internal/utils/logger"

	"gorm.io/gorm"
)

// ArticleService implements the article submission and moderation
// workflow: articles are created PENDING against an open journal and only
// move to APPROVED or REJECTED through the explicit transitions.
type ArticleService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{
		db:  db,
		log: logger.New("article_service"),
	}
}

// Create stores a new article. The referenced journal must exist and be
// OPEN, the referenced user must exist, and the status is forced to
// PENDING regardless of caller input.
func (s *ArticleService) Create(ctx context.Context, article *models.Article) error {
	var journal models.Journal
	if err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = false", article.JournalID).
		First(&journal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("journal", article.JournalID)
		}
		return err
	}

	if !journal.IsOpen() {
		return apperrors.Validation("journal %s is not open for submissions", journal.ID)
	}

	if err := s.requireUser(ctx, article.UserID); err != nil {
		return err
	}

	if article.CommentID != "" {
		if err := s.requireComment(ctx, article.CommentID); err != nil {
			return err
		}
	}

	article.Status = models.ModerationStatusPending

	return s.db.WithContext(ctx).Create(article).Error
}

// Update mutates the descriptive fields of an article. The status field
// is never touched here; approve/reject are the only transitions.
func (s *ArticleService) Update(ctx context.Context, id string, input *models.Article) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Authors != "" {
		article.Authors = input.Authors
	}
	if input.Title != "" {
		article.Title = input.Title
	}
	if input.URL != "" {
		article.URL = input.URL
	}
	if input.CommentID != "" {
		if err := s.requireComment(ctx, input.CommentID); err != nil {
			return nil, err
		}
		article.CommentID = input.CommentID
	}

	if err := s.db.WithContext(ctx).Save(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

// Approve transitions an article to APPROVED. The journal state is not
// re-checked here; public visibility is evaluated at query time.
func (s *ArticleService) Approve(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Status = models.ModerationStatusApproved
	if err := s.db.WithContext(ctx).Save(article).Error; err != nil {
		return nil, err
	}

	events.Emit("article.approved", article)
	return article, nil
}

// Reject transitions an article to REJECTED. A non-blank reason creates a
// comment owned by the article's submitter and links it to the article.
func (s *ArticleService) Reject(ctx context.Context, id, reason string) (*models.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Status = models.ModerationStatusRejected

	if strings.TrimSpace(reason) != "" {
		comment := models.Comment{
			UserID: article.UserID,
			Text:   reason,
		}
		if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
			return nil, err
		}
		article.CommentID = comment.ID
	}

	if err := s.db.WithContext(ctx).Save(article).Error; err != nil {
		return nil, err
	}

	events.Emit("article.rejected", article)
	return article, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	if err := s.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("article", id)
		}
		return nil, err
	}
	return &article, nil
}

func (s *ArticleService) ListByJournal(ctx context.Context, journalID string) ([]models.Article, error) {
	return s.list(ctx, "journal_id = ?", journalID)
}

func (s *ArticleService) ListByUser(ctx context.Context, userID string) ([]models.Article, error) {
	return s.list(ctx, "user_id = ?", userID)
}

func (s *ArticleService) ListByStatus(ctx context.Context, status models.ModerationStatus) ([]models.Article, error) {
	return s.list(ctx, "status = ?", status)
}

func (s *ArticleService) ListByJournalAndStatus(ctx context.Context, journalID string, status models.ModerationStatus) ([]models.Article, error) {
	return s.list(ctx, "journal_id = ? AND status = ?", journalID, status)
}

func (s *ArticleService) ListPending(ctx context.Context) ([]models.Article, error) {
	return s.ListByStatus(ctx, models.ModerationStatusPending)
}

// ApprovedInOpenJournals is the public feed: approved articles whose
// journal is currently OPEN, evaluated fresh per query.
func (s *ArticleService) ApprovedInOpenJournals(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.WithContext(ctx).
		Joins("JOIN journals ON journals.id = articles.journal_id").
		Where("articles.status = ? AND journals.status = ? AND articles.is_deleted = false",
			models.ModerationStatusApproved, models.JournalStatusOpen).
		Find(&articles).Error
	return articles, err
}

func (s *ArticleService) list(ctx context.Context, query string, args ...interface{}) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.WithContext(ctx).Where("is_deleted = false").
		Where(query, args...).Find(&articles).Error
	return articles, err
}

func (s *ArticleService) requireUser(ctx context.Context, id string) error {
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

func (s *ArticleService) requireComment(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND is_deleted = false", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperrors.NotFound("comment", id)
	}
	return nil
}
