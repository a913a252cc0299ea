package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Services wrap these with
// context via %w so handlers can map them to HTTP status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnauthorized    = errors.New("unauthorized")
	// ErrCommentCycle is returned when a comment chain references itself.
	// The next-comment foreign key carries no acyclicity constraint, so
	// traversal must bail out instead of looping.
	ErrCommentCycle = errors.New("comment chain contains a cycle")
)

// NotFound reports a missing entity by kind and id.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s not found with id %s: %w", kind, id, ErrNotFound)
}

// Validation reports a violated precondition.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
