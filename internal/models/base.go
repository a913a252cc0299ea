package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contains common columns for all tables
type Base struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `gorm:"index;default:NULL" json:"-" validate:"omitempty"`
	IsDeleted bool      `json:"isDeleted" default:"false"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *Base) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// ModerationStatus is the lifecycle of a submitted article or video.
// Entities are created PENDING and only move through Approve/Reject.
type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "PENDING"
	ModerationStatusApproved ModerationStatus = "APPROVED"
	ModerationStatusRejected ModerationStatus = "REJECTED"
)

// JournalStatus is stored as a free string; these are the values the
// workflow cares about.
type JournalStatus = string

const (
	JournalStatusOpen   JournalStatus = "OPEN"
	JournalStatusClosed JournalStatus = "CLOSED"
)

type RepositoryType string

const (
	RepositoryTypeCedoc      RepositoryType = "CEDOC"
	RepositoryTypePedagogico RepositoryType = "PEDAGOGICO"
	RepositoryTypeCinema     RepositoryType = "SAO_LEO_EM_CINE"
)

// IsValidModerationStatus checks if a given status is valid
func IsValidModerationStatus(status ModerationStatus) bool {
	switch status {
	case ModerationStatusPending, ModerationStatusApproved, ModerationStatusRejected:
		return true
	default:
		return false
	}
}
