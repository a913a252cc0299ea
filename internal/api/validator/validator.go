package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ValidationErrors wraps the validator's ValidationErrors
type ValidationErrors []playgroundvalidator.FieldError

// CustomValidator wraps go-playground/validator
type CustomValidator struct {
	validator *playgroundvalidator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() echo.Validator {
	v := playgroundvalidator.New()

	// Register custom validation tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	err := v.RegisterValidation("moderation_status", validateModerationStatus)
	if err != nil {
		return nil
	}
	err = v.RegisterValidation("journal_status", validateJournalStatus)
	if err != nil {
		return nil
	}
	err = v.RegisterValidation("repository_type", validateRepositoryType)
	if err != nil {
		return nil
	}

	return &CustomValidator{validator: v}
}

// Custom validation functions
func validateModerationStatus(fl playgroundvalidator.FieldLevel) bool {
	status := fl.Field().String()
	return status == "PENDING" || status == "APPROVED" || status == "REJECTED"
}

func validateJournalStatus(fl playgroundvalidator.FieldLevel) bool {
	status := fl.Field().String()
	return status == "OPEN" || status == "CLOSED"
}

func validateRepositoryType(fl playgroundvalidator.FieldLevel) bool {
	t := fl.Field().String()
	return t == "CEDOC" || t == "PEDAGOGICO" || t == "SAO_LEO_EM_CINE"
}

// Validate implements echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		var validationErrors playgroundvalidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return ValidationErrors(validationErrors)
		}
		return err
	}
	return nil
}

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	var fields []string
	for _, err := range ve {
		fields = append(fields, err.Field())
	}
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}

// ArticleRequest Request validation structs based on models
type ArticleRequest struct {
	JournalID string `json:"journalId" validate:"required,uuid"`
	Authors   string `json:"authors" validate:"required"`
	Title     string `json:"title" validate:"required"`
	URL       string `json:"url" validate:"omitempty,url"`
	UserID    string `json:"userId" validate:"required,uuid"`
	CommentID string `json:"commentId" validate:"omitempty,uuid"`
}

type VideoRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	URL          string `json:"url" validate:"required,url"`
	URLThumbnail string `json:"urlThumbnail"`
	RepositoryID string `json:"repositoryId" validate:"required,uuid"`
	UserID       string `json:"userId" validate:"required,uuid"`
	SchoolID     string `json:"schoolId" validate:"required,uuid"`
}

type CommentRequest struct {
	UserID        string  `json:"userId" validate:"required,uuid"`
	Text          string  `json:"text" validate:"required"`
	NextCommentID *string `json:"nextCommentId" validate:"omitempty,uuid"`
}

type ModerationRequest struct {
	Reason string `json:"reason"`
}
