package models

import (
	"arca/internal/events"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Address struct {
	Base
	Street     string `gorm:"not null" json:"street" validate:"required"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `gorm:"not null" json:"city" validate:"required"`
	State      string `gorm:"not null" json:"state" validate:"required"`
	ZipCode    string `json:"zipCode"`
}

type Contact struct {
	Base
	Email string `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

type Person struct {
	Base
	Name      string   `gorm:"not null" json:"name" validate:"required,min=2"`
	ContactID string   `gorm:"type:uuid;not null" json:"contactId" validate:"required,uuid"`
	Contact   *Contact `json:"contact,omitempty"`
	AddressID string   `gorm:"type:uuid;not null" json:"addressId" validate:"required,uuid"`
	Address   *Address `json:"address,omitempty"`
}

type School struct {
	Base
	Name        string   `gorm:"not null" json:"name" validate:"required,min=2"`
	ContactID   string   `gorm:"type:uuid;not null" json:"contactId" validate:"required,uuid"`
	Contact     *Contact `json:"contact,omitempty"`
	AddressID   string   `gorm:"type:uuid;not null" json:"addressId" validate:"required,uuid"`
	Address     *Address `json:"address,omitempty"`
	PrincipalID string   `gorm:"type:uuid;not null" json:"principalId" validate:"required,uuid"`
	Principal   *Person  `json:"principal,omitempty"`
}

type Category struct {
	Base
	Name        string `gorm:"not null" json:"name" validate:"required"`
	Description string `json:"description"`
}

type Repository struct {
	Base
	Name        string         `gorm:"not null" json:"name" validate:"required"`
	Description string         `json:"description"`
	Type        RepositoryType `gorm:"not null;default:'CEDOC'" json:"type" validate:"required,repository_type"`
}

type Document struct {
	Base
	UserID       string      `gorm:"type:uuid;not null" json:"userId" validate:"required,uuid"`
	User         *User       `json:"user,omitempty"`
	Title        string      `gorm:"not null" json:"title" validate:"required"`
	Description  string      `gorm:"type:text" json:"description"`
	Link         string      `gorm:"not null" json:"link" validate:"required,url"`
	CategoryID   string      `gorm:"type:uuid;not null" json:"categoryId" validate:"required,uuid"`
	Category     *Category   `json:"category,omitempty"`
	SchoolID     string      `gorm:"type:uuid;default:NULL" json:"schoolId,omitempty" validate:"omitempty,uuid"`
	School       *School     `json:"school,omitempty"`
	RepositoryID string      `gorm:"type:uuid;not null" json:"repositoryId" validate:"required,uuid"`
	Repository   *Repository `json:"repository,omitempty"`
}

type Journal struct {
	Base
	Name         string          `gorm:"not null" json:"name" validate:"required"`
	RepositoryID string          `gorm:"type:uuid;not null" json:"repositoryId" validate:"required,uuid"`
	Repository   *Repository     `json:"repository,omitempty"`
	SchoolID     string          `gorm:"type:uuid;not null" json:"schoolId" validate:"required,uuid"`
	School       *School         `json:"school,omitempty"`
	UserID       string          `gorm:"type:uuid;not null" json:"userId" validate:"required,uuid"`
	User         *User           `json:"user,omitempty"`
	OpeningDate  *datatypes.Date `json:"openingDate,omitempty"`
	ClosingDate  *datatypes.Date `json:"closingDate,omitempty"`
	// Stored as a free string; OPEN gates article submission and public
	// visibility, anything else is treated as closed.
	Status string `gorm:"not null;default:'OPEN'" json:"status"`
}

func (j *Journal) IsOpen() bool {
	return j.Status == JournalStatusOpen
}

type Article struct {
	Base
	JournalID string           `gorm:"type:uuid;not null" json:"journalId" validate:"required,uuid"`
	Journal   *Journal         `json:"journal,omitempty"`
	Authors   string           `gorm:"type:text;not null" json:"authors" validate:"required"`
	Title     string           `gorm:"not null" json:"title" validate:"required"`
	URL       string           `json:"url" validate:"omitempty,url"`
	UserID    string           `gorm:"type:uuid;not null" json:"userId" validate:"required,uuid"`
	User      *User            `json:"user,omitempty"`
	Status    ModerationStatus `gorm:"not null;default:'PENDING'" json:"status"`
	CommentID string           `gorm:"type:uuid;default:NULL" json:"commentId,omitempty" validate:"omitempty,uuid"`
	Comment   *Comment         `json:"comment,omitempty"`
}

func (a *Article) AfterCreate(tx *gorm.DB) error {
	events.Emit("article.created", a)
	return nil
}

type Video struct {
	Base
	Title        string           `gorm:"not null" json:"title" validate:"required"`
	Description  string           `gorm:"type:text" json:"description"`
	URL          string           `gorm:"not null" json:"url" validate:"required,url"`
	URLThumbnail string           `json:"urlThumbnail"`
	Status       ModerationStatus `gorm:"not null;default:'PENDING'" json:"status"`
	RepositoryID string           `gorm:"type:uuid;not null" json:"repositoryId" validate:"required,uuid"`
	Repository   *Repository      `json:"repository,omitempty"`
	UserID       string           `gorm:"type:uuid;not null" json:"userId" validate:"required,uuid"`
	User         *User            `json:"user,omitempty"`
	SchoolID     string           `gorm:"type:uuid;not null" json:"schoolId" validate:"required,uuid"`
	School       *School          `json:"school,omitempty"`
	CommentID    string           `gorm:"type:uuid;default:NULL" json:"commentId,omitempty" validate:"omitempty,uuid"`
	Comment      *Comment         `json:"comment,omitempty"`
	SignedThumbnail string        `gorm:"-" json:"signedThumbnail,omitempty"` // Virtual field
}

func (v *Video) AfterCreate(tx *gorm.DB) error {
	events.Emit("video.created", v)
	return nil
}

func (v *Video) AfterFind(tx *gorm.DB) error {
	registryMu.RLock()
	generator := urlGenerator
	registryMu.RUnlock()

	if generator != nil && v.URLThumbnail != "" {
		url, err := generator.GetSignedURL(tx.Statement.Context, v.URLThumbnail, time.Hour)
		if err != nil {
			return fmt.Errorf("failed to generate signed thumbnail URL: %w", err)
		}
		v.SignedThumbnail = url
	}
	return nil
}

// Comment is a node in a singly-linked chain: each comment has at most
// one successor through NextCommentID.
type Comment struct {
	Base
	UserID        string   `gorm:"type:uuid;not null" json:"userId" validate:"required,uuid"`
	User          *User    `json:"user,omitempty"`
	Text          string   `gorm:"type:text;not null" json:"text" validate:"required"`
	NextCommentID *string  `gorm:"type:uuid;default:NULL" json:"nextCommentId,omitempty" validate:"omitempty,uuid"`
	NextComment   *Comment `json:"nextComment,omitempty"`
}
