package services

import (
	"context"
	"regexp"
	"strings"

	"arca/internal/events"
	"arca/internal/models"
	"arca/internal/utils/logger"

	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm"
)

// MatchesURL reports whether a stored permission pattern matches a
// requested URL.
//
// Matching rules, in order:
//   - exact string equality
//   - a pattern ending in "/**" matches any URL starting with the prefix
//     before "/**" (plain prefix match, so "/api/users/**" also matches
//     "/api/users" itself)
//   - a pattern containing "*" is translated to a regex, "**" first then
//     any remaining "*", and must match the full URL
//
// The substitution order matters: "**" is rewritten over the whole string
// before lone "*" is, because the two rules interact.
func MatchesURL(pattern, url string) bool {
	if pattern == url {
		return true
	}

	if strings.HasSuffix(pattern, "/**") {
		base := pattern[:len(pattern)-3]
		return strings.HasPrefix(url, base)
	}

	if strings.Contains(pattern, "*") {
		regexPattern := strings.ReplaceAll(pattern, "**", ".*")
		regexPattern = strings.ReplaceAll(regexPattern, "*", "[^/]*")
		matched, err := regexp.MatchString("^(?:"+regexPattern+")$", url)
		if err != nil {
			return false
		}
		return matched
	}

	return false
}

// permissionSets holds a user's flattened URL pattern sets.
type permissionSets struct {
	api    map[string]struct{}
	client map[string]struct{}
}

// PermissionService resolves a user's roles into flattened URL pattern
// sets and answers authorization queries against them. Resolved sets are
// cached per email and dropped when the role/permission graph changes.
type PermissionService struct {
	db    *gorm.DB
	cache *lru.Cache[string, *permissionSets]
	log   *logger.Logger
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	cache, _ := lru.New[string, *permissionSets](1024)

	s := &PermissionService{
		db:    db,
		cache: cache,
		log:   logger.New("permission_service"),
	}

	// Invalidate on writes to the graph. Role and permission edits can
	// affect any number of users, so the whole cache goes.
	events.On("permission.changed", func(interface{}) { s.cache.Purge() })
	events.On("role.changed", func(interface{}) { s.cache.Purge() })
	events.On("user.changed", func(data interface{}) {
		if user, ok := data.(*models.User); ok {
			s.cache.Remove(user.Email)
			return
		}
		s.cache.Purge()
	})

	return s
}

// UserAPIPermissions returns the set of API URL patterns granted to the
// user identified by email. An unknown email yields an empty set, not an
// error.
func (s *PermissionService) UserAPIPermissions(ctx context.Context, email string) (map[string]struct{}, error) {
	sets, err := s.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	return sets.api, nil
}

// UserClientPermissions returns the set of client URL patterns granted to
// the user identified by email.
func (s *PermissionService) UserClientPermissions(ctx context.Context, email string) (map[string]struct{}, error) {
	sets, err := s.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	return sets.client, nil
}

// HasAPIPermission reports whether any of the user's API patterns matches
// the request URI. First match wins; patterns carry no precedence.
func (s *PermissionService) HasAPIPermission(ctx context.Context, email, requestURI string) (bool, error) {
	patterns, err := s.UserAPIPermissions(ctx, email)
	if err != nil {
		return false, err
	}

	for pattern := range patterns {
		if MatchesURL(pattern, requestURI) {
			s.log.Debug("authorization granted: user=%s uri=%s pattern=%s", email, requestURI, pattern)
			return true, nil
		}
	}

	s.log.Debug("authorization denied: user=%s uri=%s patterns=%d", email, requestURI, len(patterns))
	return false, nil
}

func (s *PermissionService) resolve(ctx context.Context, email string) (*permissionSets, error) {
	if cached, ok := s.cache.Get(email); ok {
		return cached, nil
	}

	sets := &permissionSets{
		api:    make(map[string]struct{}),
		client: make(map[string]struct{}),
	}

	var user models.User
	err := s.db.WithContext(ctx).Preload("Roles.Permissions").
		Where("email = ? AND is_deleted = false", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Unknown identity resolves to no permissions.
			return sets, nil
		}
		return nil, err
	}

	for _, role := range user.Roles {
		for _, permission := range role.Permissions {
			addPatterns(sets.api, permission.URLAPI)
			addPatterns(sets.client, permission.URLClient)
		}
	}

	s.cache.Add(email, sets)
	return sets, nil
}

// addPatterns splits a comma-separated pattern field and adds the trimmed
// non-empty pieces to the set.
func addPatterns(set map[string]struct{}, field string) {
	if field == "" {
		return
	}
	for _, piece := range strings.Split(field, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			set[piece] = struct{}{}
		}
	}
}
