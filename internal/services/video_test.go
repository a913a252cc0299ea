package services

import (
	"context"
	"testing"

	"arca/internal/apperrors"
	"arca/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createVideo(t *testing.T, svc *VideoService, repoID, userID, schoolID string) *models.Video {
	t.Helper()
	video := &models.Video{
		Title:        "Test Video",
		URL:          "https://videos.test/v1",
		RepositoryID: repoID,
		UserID:       userID,
		SchoolID:     schoolID,
	}
	require.NoError(t, svc.Create(context.Background(), video))
	return video
}

func TestVideoCreateForcesPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewVideoService(db)

	user := createUser(t, db, "author@school.test")
	school := createSchool(t, db)
	repo := createRepository(t, db)

	video := &models.Video{
		Title:        "Sneaky",
		URL:          "https://videos.test/v1",
		RepositoryID: repo.ID,
		UserID:       user.ID,
		SchoolID:     school.ID,
		Status:       models.ModerationStatusApproved,
	}
	require.NoError(t, svc.Create(context.Background(), video))

	stored, err := svc.Get(context.Background(), video.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ModerationStatusPending, stored.Status)
}

func TestVideoCreateMissingReferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewVideoService(db)
	ctx := context.Background()

	user := createUser(t, db, "author@school.test")
	school := createSchool(t, db)
	repo := createRepository(t, db)

	err := svc.Create(ctx, &models.Video{
		Title: "No Repo", URL: "https://videos.test/v1",
		UserID: user.ID, SchoolID: school.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = svc.Create(ctx, &models.Video{
		Title: "Bad Repo", URL: "https://videos.test/v1",
		RepositoryID: "missing", UserID: user.ID, SchoolID: school.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.Create(ctx, &models.Video{
		Title: "Bad School", URL: "https://videos.test/v1",
		RepositoryID: repo.ID, UserID: user.ID, SchoolID: "missing",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestVideoRejectDoesNotPersistReason(t *testing.T) {
	db := newTestDB(t)
	svc := NewVideoService(db)
	ctx := context.Background()

	user := createUser(t, db, "author@school.test")
	school := createSchool(t, db)
	repo := createRepository(t, db)
	video := createVideo(t, svc, repo.ID, user.ID, school.ID)

	rejected, err := svc.Reject(ctx, video.ID, "shaky camera work")
	require.NoError(t, err)
	assert.Equal(t, models.ModerationStatusRejected, rejected.Status)

	// Unlike articles, the reason leaves no trace: no comment row and no
	// comment link on the video.
	assert.Empty(t, rejected.CommentID)
	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVideoApprove(t *testing.T) {
	db := newTestDB(t)
	svc := NewVideoService(db)
	ctx := context.Background()

	user := createUser(t, db, "author@school.test")
	school := createSchool(t, db)
	repo := createRepository(t, db)
	video := createVideo(t, svc, repo.ID, user.ID, school.ID)

	approved, err := svc.Approve(ctx, video.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ModerationStatusApproved, approved.Status)
}

func TestVideoListBySchoolAndStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewVideoService(db)
	ctx := context.Background()

	user := createUser(t, db, "author@school.test")
	schoolA := createSchool(t, db)
	schoolB := createSchool(t, db)
	repo := createRepository(t, db)

	v1 := createVideo(t, svc, repo.ID, user.ID, schoolA.ID)
	createVideo(t, svc, repo.ID, user.ID, schoolA.ID)
	createVideo(t, svc, repo.ID, user.ID, schoolB.ID)

	_, err := svc.Approve(ctx, v1.ID)
	require.NoError(t, err)

	approved, err := svc.ListBySchoolAndStatus(ctx, schoolA.ID, models.ModerationStatusApproved)
	require.NoError(t, err)
	assert.Len(t, approved, 1)

	pending, err := svc.ListBySchoolAndStatus(ctx, schoolA.ID, models.ModerationStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	bySchool, err := svc.ListBySchool(ctx, schoolB.ID)
	require.NoError(t, err)
	assert.Len(t, bySchool, 1)
}
