package services

import (
	"context"
	"testing"

	"arca/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesURL(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		url     string
		want    bool
	}{
		{"exact match", "/api/users", "/api/users", true},
		{"exact mismatch", "/api/users", "/api/roles", false},
		{"recursive wildcard matches nested path", "/api/users/**", "/api/users/123/roles", true},
		{"recursive wildcard matches direct child", "/api/users/**", "/api/users/123", true},
		{"recursive wildcard matches base path itself", "/api/users/**", "/api/users", true},
		{"recursive wildcard rejects other resource", "/api/users/**", "/api/roles", false},
		{"root recursive wildcard matches everything", "/api/**", "/api/anything/at/all", true},
		{"single wildcard spans one segment", "/api/*/documents", "/api/schools/documents", true},
		{"single wildcard does not cross slash", "/api/*/documents", "/api/a/b/documents", false},
		{"single wildcard suffix", "/api/users/*", "/api/users/123", true},
		{"single wildcard suffix rejects nested", "/api/users/*", "/api/users/123/roles", false},
		{"no wildcard no match", "/api/users", "/api/users/123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesURL(tt.pattern, tt.url))
		})
	}
}

func TestUserAPIPermissionsAggregation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "author@school.test")

	perm1 := models.Permission{
		Name:   "submission",
		URLAPI: "/api/articles, /api/videos,/api/comments",
	}
	perm2 := models.Permission{
		Name:      "catalog_read",
		URLAPI:    "/api/journals/**,/api/articles",
		URLClient: "/catalog/**",
	}
	require.NoError(t, db.Create(&perm1).Error)
	require.NoError(t, db.Create(&perm2).Error)

	role1 := models.Role{Name: "AUTHOR", Permissions: []models.Permission{perm1}}
	role2 := models.Role{Name: "READER", Permissions: []models.Permission{perm2}}
	require.NoError(t, db.Create(&role1).Error)
	require.NoError(t, db.Create(&role2).Error)
	require.NoError(t, db.Model(user).Association("Roles").Append(&role1, &role2))

	svc := NewPermissionService(db)

	patterns, err := svc.UserAPIPermissions(ctx, user.Email)
	require.NoError(t, err)

	// Duplicate "/api/articles" collapses; whitespace around commas is
	// trimmed; patterns from both roles land in one set.
	assert.Len(t, patterns, 4)
	for _, want := range []string{"/api/articles", "/api/videos", "/api/comments", "/api/journals/**"} {
		assert.Contains(t, patterns, want)
	}

	client, err := svc.UserClientPermissions(ctx, user.Email)
	require.NoError(t, err)
	assert.Len(t, client, 1)
	assert.Contains(t, client, "/catalog/**")
}

func TestUserAPIPermissionsUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewPermissionService(db)

	patterns, err := svc.UserAPIPermissions(context.Background(), "nobody@nowhere.test")
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestHasAPIPermission(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "moderator@school.test")

	perm := models.Permission{
		Name:   "moderation",
		URLAPI: "/api/articles/**,/api/videos/**",
	}
	require.NoError(t, db.Create(&perm).Error)

	role := models.Role{Name: "MODERATOR", Permissions: []models.Permission{perm}}
	require.NoError(t, db.Create(&role).Error)
	require.NoError(t, db.Model(user).Association("Roles").Append(&role))

	svc := NewPermissionService(db)

	allowed, err := svc.HasAPIPermission(ctx, user.Email, "/api/articles/abc/approve")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.HasAPIPermission(ctx, user.Email, "/api/schools")
	require.NoError(t, err)
	assert.False(t, allowed)

	// A user with no roles gets nothing
	other := createUser(t, db, "plain@school.test")
	allowed, err = svc.HasAPIPermission(ctx, other.Email, "/api/articles")
	require.NoError(t, err)
	assert.False(t, allowed)
}
