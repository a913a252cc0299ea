package services

import (
	"context"
	"testing"

	"arca/internal/apperrors"
	"arca/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseServiceCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewBaseService(db, models.Category{})
	ctx := context.Background()

	category := &models.Category{Name: "History", Description: "Local history"}
	require.NoError(t, svc.Create(ctx, category))
	require.NotEmpty(t, category.ID)

	fetched, err := svc.Get(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "History", fetched.Name)

	fetched.Description = "Regional history"
	require.NoError(t, svc.Update(ctx, category.ID, fetched))

	updated, err := svc.Get(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Regional history", updated.Description)
}

func TestBaseServiceSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewBaseService(db, models.Category{})
	ctx := context.Background()

	category := &models.Category{Name: "Ephemeral"}
	require.NoError(t, svc.Create(ctx, category))
	require.NoError(t, svc.Delete(ctx, category.ID))

	// Soft-deleted rows disappear from reads and counts but stay in the
	// table.
	_, err := svc.Get(ctx, category.ID)
	require.Error(t, err)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	var raw int64
	require.NoError(t, db.Model(&models.Category{}).Count(&raw).Error)
	assert.Equal(t, int64(1), raw)
}

func TestBaseServiceListPaginationAndFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewBaseService(db, models.Repository{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Create(ctx, &models.Repository{
			Name: "Repo",
			Type: models.RepositoryTypeCedoc,
		}))
	}
	require.NoError(t, svc.Create(ctx, &models.Repository{
		Name: "Cine",
		Type: models.RepositoryTypeCinema,
	}))

	all, total, err := svc.List(ctx, 1, 10, nil, nil, nil, "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, all, 4)

	page, _, err := svc.List(ctx, 1, 2, nil, nil, nil, "")
	require.NoError(t, err)
	assert.Len(t, page, 2)

	filtered, total, err := svc.List(ctx, 1, 10,
		map[string]interface{}{"type": "SAO_LEO_EM_CINE"}, nil, nil, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Cine", filtered[0].Name)
}

func TestBaseServiceUpdateJournalStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewBaseService(db, models.Journal{})
	ctx := context.Background()

	journal := createJournal(t, db, models.JournalStatusOpen)

	// Editors close and reopen journals through plain CRUD; there is no
	// dedicated transition endpoint.
	journal.Status = models.JournalStatusClosed
	require.NoError(t, svc.Update(ctx, journal.ID, journal))

	closed, err := svc.Get(ctx, journal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JournalStatusClosed, closed.Status)

	user := createUser(t, db, "author@school.test")
	err = NewArticleService(db).Create(ctx, &models.Article{
		JournalID: journal.ID,
		Authors:   "A. Author",
		Title:     "Too Late",
		UserID:    user.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	journal.Status = models.JournalStatusOpen
	require.NoError(t, svc.Update(ctx, journal.ID, journal))

	reopened, err := svc.Get(ctx, journal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JournalStatusOpen, reopened.Status)
}

func TestBaseServiceCount(t *testing.T) {
	db := newTestDB(t)
	svc := NewBaseService(db, models.Contact{})
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &models.Contact{Email: "a@test.dev"}))
	require.NoError(t, svc.Create(ctx, &models.Contact{Email: "b@test.dev"}))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
