package models

import (
	"arca/internal/events"

	"gorm.io/gorm"
)

// The permission cache is keyed by user email and must be dropped
// whenever the role/permission graph changes underneath it.

func (p *Permission) AfterSave(tx *gorm.DB) error {
	events.Emit("permission.changed", p)
	return nil
}

func (p *Permission) AfterDelete(tx *gorm.DB) error {
	events.Emit("permission.changed", p)
	return nil
}

func (r *Role) AfterSave(tx *gorm.DB) error {
	events.Emit("role.changed", r)
	return nil
}

func (r *Role) AfterDelete(tx *gorm.DB) error {
	events.Emit("role.changed", r)
	return nil
}

func (u *User) AfterSave(tx *gorm.DB) error {
	events.Emit("user.changed", u)
	return nil
}
