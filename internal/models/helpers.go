package models

import (
	"gorm.io/gorm"
)

// GetUserByEmail retrieves a user with their role/permission graph loaded
func GetUserByEmail(email string, db *gorm.DB) (*User, error) {
	user := &User{}
	if err := db.Preload("Roles.Permissions").
		Where("email = ? AND is_deleted = false", email).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
