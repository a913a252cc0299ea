package services

import (
	"context"
	"testing"

	"arca/internal/apperrors"
	"arca/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCreateForcesPending(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewArticleService(db)

	user := createUser(t, db, "author@school.test")
	journal := createJournal(t, db, models.JournalStatusOpen)

	article := &models.Article{
		JournalID: journal.ID,
		Authors:   "A. Author",
		Title:     "First Article",
		UserID:    user.ID,
		Status:    models.ModerationStatusApproved, // caller tries to sneak it in
	}
	require.NoError(t, svc.Create(ctx, article))

	stored, err := svc.Get(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ModerationStatusPending, stored.Status)
}

func TestArticleCreateClosedJournal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewArticleService(db)

	user := createUser(t, db, "author@school.test")
	journal := createJournal(t, db, models.JournalStatusClosed)

	article := &models.Article{
		JournalID: journal.ID,
		Authors:   "A. Author",
		Title:     "Too Late",
		UserID:    user.ID,
	}
	err := svc.Create(ctx, article)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestArticleCreateMissingJournal(t *testing.T) {
	db := newTestDB(t)
	svc := NewArticleService(db)

	user := createUser(t, db, "author@school.test")

	err := svc.Create(context.Background(), &models.Article{
		JournalID: "does-not-exist",
		Authors:   "A. Author",
		Title:     "Orphan",
		UserID:    user.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestArticleApproveThenReject(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewArticleService(db)

	user := createUser(t, db, "author@school.test")
	journal := createJournal(t, db, models.JournalStatusOpen)

	article := &models.Article{
		JournalID: journal.ID,
		Authors:   "A. Author",
		Title:     "Flip Flop",
		UserID:    user.ID,
	}
	require.NoError(t, svc.Create(ctx, article))

	approved, err := svc.Approve(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ModerationStatusApproved, approved.Status)

	// Rejecting an approved article is allowed; last transition wins
	rejected, err := svc.Reject(ctx, article.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.ModerationStatusRejected, rejected.Status)
}

func TestArticleRejectWithReasonCreatesComment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewArticleService(db)

	user := createUser(t, db, "author@school.test")
	journal := createJournal(t, db, models.JournalStatusOpen)

	article := &models.Article{
		JournalID: journal.ID,
		Authors:   "A. Author",
		Title:     "Needs Work",
		UserID:    user.ID,
	}
	require.NoError(t, svc.Create(ctx, article))

	rejected, err := svc.Reject(ctx, article.ID, "missing references")
	require.NoError(t, err)
	assert.Equal(t, models.ModerationStatusRejected, rejected.Status)
	require.NotEmpty(t, rejected.CommentID)

	var comment models.Comment
	require.NoError(t, db.First(&comment, "id = ?", rejected.CommentID).Error)
	assert.Equal(t, "missing references", comment.Text)
	assert.Equal(t, user.ID, comment.UserID)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestArticleRejectBlankReasonNoComment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewArticleService(db)

	user := createUser(t, db, "author@school.test")
	journal := createJournal(t, db, models.JournalStatusOpen)

	article := &models.Article{
		JournalID: journal.ID,
		Authors:   "A. Author",
		Title:     "No Feedback",
		UserID:    user.ID,
	}
	require.NoError(t, svc.Create(ctx, article))

	rejected, err := svc.Reject(ctx, article.ID, "   ")
	require.NoError(t, err)
	assert.Empty(t, rejected.CommentID)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApprovedInOpenJournals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewArticleService(db)

	user := createUser(t, db, "author@school.test")
	open := createJournal(t, db, models.JournalStatusOpen)
	closed := createJournal(t, db, models.JournalStatusClosed)

	seed := func(journalID string, status models.ModerationStatus, title string) {
		article := &models.Article{
			JournalID: journalID,
			Authors:   "A. Author",
			Title:     title,
			UserID:    user.ID,
			Status:    status,
		}
		require.NoError(t, db.Create(article).Error)
	}

	seed(open.ID, models.ModerationStatusApproved, "visible")
	seed(open.ID, models.ModerationStatusPending, "pending in open")
	seed(closed.ID, models.ModerationStatusApproved, "approved in closed")
	seed(closed.ID, models.ModerationStatusRejected, "rejected in closed")

	articles, err := svc.ApprovedInOpenJournals(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "visible", articles[0].Title)
}

func TestArticleListFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewArticleService(db)

	user := createUser(t, db, "author@school.test")
	other := createUser(t, db, "other@school.test")
	journal := createJournal(t, db, models.JournalStatusOpen)

	for i, uid := range []string{user.ID, user.ID, other.ID} {
		require.NoError(t, svc.Create(ctx, &models.Article{
			JournalID: journal.ID,
			Authors:   "A. Author",
			Title:     string(rune('A' + i)),
			UserID:    uid,
		}))
	}

	byUser, err := svc.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byJournal, err := svc.ListByJournal(ctx, journal.ID)
	require.NoError(t, err)
	assert.Len(t, byJournal, 3)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}
