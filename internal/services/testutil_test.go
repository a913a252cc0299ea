package services

import (
	"fmt"
	"testing"
	"time"

	"arca/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database migrated with the full
// schema. Each test gets its own named database so parallel tests do not
// share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Address{},
		&models.Contact{},
		&models.Category{},
		&models.Repository{},
		&models.Permission{},
		&models.Role{},
		&models.Person{},
		&models.School{},
		&models.User{},
		&models.AuthTransaction{},
		&models.Comment{},
		&models.Document{},
		&models.Journal{},
		&models.Article{},
		&models.Video{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hash",
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createSchool(t *testing.T, db *gorm.DB) *models.School {
	t.Helper()
	school := &models.School{
		Name:        "Test School",
		ContactID:   uuid.NewString(),
		AddressID:   uuid.NewString(),
		PrincipalID: uuid.NewString(),
	}
	require.NoError(t, db.Create(school).Error)
	return school
}

func createRepository(t *testing.T, db *gorm.DB) *models.Repository {
	t.Helper()
	repo := &models.Repository{
		Name: "Test Repository",
		Type: models.RepositoryTypeCedoc,
	}
	require.NoError(t, db.Create(repo).Error)
	return repo
}

func createJournal(t *testing.T, db *gorm.DB, status string) *models.Journal {
	t.Helper()
	journal := &models.Journal{
		Name:         "Test Journal",
		RepositoryID: uuid.NewString(),
		SchoolID:     uuid.NewString(),
		UserID:       uuid.NewString(),
		Status:       status,
	}
	require.NoError(t, db.Create(journal).Error)
	return journal
}

func dateOf(t *testing.T, value string) *datatypes.Date {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	d := datatypes.Date(parsed)
	return &d
}
