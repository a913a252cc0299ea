package services

import (
	"context"
	"testing"
	"time"

	"arca/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalCloseExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewJournalService(db)
	ctx := context.Background()

	expired := createJournal(t, db, models.JournalStatusOpen)
	expired.ClosingDate = dateOf(t, "2026-01-15")
	require.NoError(t, db.Save(expired).Error)

	future := createJournal(t, db, models.JournalStatusOpen)
	future.ClosingDate = dateOf(t, "2027-06-01")
	require.NoError(t, db.Save(future).Error)

	// No closing date means the journal never auto-closes
	open := createJournal(t, db, models.JournalStatusOpen)

	alreadyClosed := createJournal(t, db, models.JournalStatusClosed)
	alreadyClosed.ClosingDate = dateOf(t, "2026-01-15")
	require.NoError(t, db.Save(alreadyClosed).Error)

	now, err := time.Parse("2006-01-02", "2026-08-30")
	require.NoError(t, err)

	closed, err := svc.CloseExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	var reloaded models.Journal
	require.NoError(t, db.First(&reloaded, "id = ?", expired.ID).Error)
	assert.Equal(t, models.JournalStatusClosed, reloaded.Status)

	reloaded = models.Journal{}
	require.NoError(t, db.First(&reloaded, "id = ?", future.ID).Error)
	assert.Equal(t, models.JournalStatusOpen, reloaded.Status)

	reloaded = models.Journal{}
	require.NoError(t, db.First(&reloaded, "id = ?", open.ID).Error)
	assert.Equal(t, models.JournalStatusOpen, reloaded.Status)
}

func TestJournalListByStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewJournalService(db)
	ctx := context.Background()

	createJournal(t, db, models.JournalStatusOpen)
	createJournal(t, db, models.JournalStatusOpen)
	createJournal(t, db, models.JournalStatusClosed)

	open, err := svc.ListByStatus(ctx, models.JournalStatusOpen)
	require.NoError(t, err)
	assert.Len(t, open, 2)

	closed, err := svc.ListByStatus(ctx, models.JournalStatusClosed)
	require.NoError(t, err)
	assert.Len(t, closed, 1)
}

func TestJournalIsOpen(t *testing.T) {
	assert.True(t, (&models.Journal{Status: models.JournalStatusOpen}).IsOpen())
	assert.False(t, (&models.Journal{Status: models.JournalStatusClosed}).IsOpen())
	assert.False(t, (&models.Journal{Status: "ARCHIVED"}).IsOpen())
}
