package models

import (
	"arca/internal/config"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	console "arca/internal/utils/logger"

	"gorm.io/gorm"
)

var log = console.New("SEEDER")

// Default permissions and the URL patterns they grant. Multiple patterns
// per permission are comma-separated, matching how the matcher splits them.
var defaultPermissions = []Permission{
	{
		Name:        "admin_full",
		Description: "Full access to the API and the client",
		URLAPI:      "/api/**",
		URLClient:   "/**",
	},
	{
		Name:        "moderation",
		Description: "Review pending articles and videos",
		URLAPI:      "/api/articles/**,/api/videos/**,/api/comments/**",
		URLClient:   "/moderation/**",
	},
	{
		Name:        "submission",
		Description: "Submit articles and videos, manage own comments",
		URLAPI:      "/api/articles,/api/videos,/api/comments,/api/documents",
		URLClient:   "/submissions/**",
	},
	{
		Name:        "catalog_read",
		Description: "Read access to repositories, journals and documents",
		URLAPI:      "/api/repositories/**,/api/journals/**,/api/documents/**,/api/categories/**",
		URLClient:   "/catalog/**",
	},
}

// Role-to-permission mappings seeded on startup
var rolePermissions = map[string][]string{
	"ADMIN":     {"admin_full"},
	"MODERATOR": {"moderation", "catalog_read"},
	"AUTHOR":    {"submission", "catalog_read"},
	"READER":    {"catalog_read"},
}

// SeedPermissions creates default permissions and roles
func SeedPermissions(db *gorm.DB) error {
	for _, permission := range defaultPermissions {
		if err := db.Where(Permission{Name: permission.Name}).
			Attrs(Permission{
				Description: permission.Description,
				URLAPI:      permission.URLAPI,
				URLClient:   permission.URLClient,
			}).FirstOrCreate(&permission).Error; err != nil {
			return fmt.Errorf("failed to create permission %s: %v", permission.Name, err)
		}
	}

	for roleName, permissionNames := range rolePermissions {
		log.Info("Creating role: %s", roleName)

		role := Role{Name: roleName}
		if err := db.Where(Role{Name: roleName}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to create role %s: %v", roleName, err)
		}

		var permissions []Permission
		if err := db.Where("name IN ?", permissionNames).Find(&permissions).Error; err != nil {
			return fmt.Errorf("failed to find permissions for role %s: %v", roleName, err)
		}

		if err := db.Model(&role).Association("Permissions").Replace(permissions); err != nil {
			return fmt.Errorf("failed to assign permissions to role %s: %v", roleName, err)
		}
	}

	return nil
}

// CreateAdminFromEnv bootstraps an administrator user with the ADMIN role
// if no user holds it yet
func CreateAdminFromEnv(db *gorm.DB, cfg *config.Config) error {
	var role Role
	if err := db.Where("name = ?", "ADMIN").First(&role).Error; err != nil {
		return fmt.Errorf("ADMIN role not seeded: %v", err)
	}

	var count int64
	db.Model(&User{}).
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Where("user_roles.role_id = ?", role.ID).
		Count(&count)
	log.Info("Admin user count: %d", count)
	if count > 0 {
		return nil
	}

	if cfg.Admin.Email == "" {
		return fmt.Errorf("ADMIN_EMAIL not set")
	}
	if cfg.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD not set")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	user := User{
		Name:         cfg.Admin.Name,
		Email:        cfg.Admin.Email,
		PasswordHash: string(hashedPassword),
		Active:       true,
		Roles:        []Role{role},
	}

	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %v", err)
	}

	return nil
}
