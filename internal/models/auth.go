package models

import (
	"time"
)

type User struct {
	Base
	Name         string  `gorm:"not null" json:"name" validate:"required,min=2"`
	Picture      string  `json:"picture"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Active       bool    `gorm:"not null;default:true" json:"active"`
	SchoolID     string  `gorm:"type:uuid;default:NULL" json:"schoolId,omitempty" validate:"omitempty,uuid"`
	School       *School `json:"school,omitempty"`
	Roles        []Role  `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

type Role struct {
	Base
	Name        string       `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
}

// Permission grants access to URL patterns. URLAPI and URLClient each
// hold a comma-separated list of patterns, optionally using * and **
// wildcards (e.g. "/api/articles/**,/api/journals").
type Permission struct {
	Base
	Name        string `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Description string `json:"description"`
	URLAPI      string `gorm:"column:url_api" json:"urlApi"`
	URLClient   string `gorm:"column:url_client" json:"urlClient"`
}

type AuthTransaction struct {
	Base
	UserID    string    `gorm:"type:uuid;not null" json:"userId"`
	User      *User     `json:"user,omitempty"`
	Token     string    `gorm:"not null" json:"token"`
	Refresh   string    `gorm:"not null" json:"refresh"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt"`
}
