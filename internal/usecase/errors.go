package usecase

import (
	"errors"
	"fmt"
	"seguros_xpto/internal/domain/validation"
	"strings"
)

var (
	ErrValidation             = errors.New("validation failed")
	ErrUnauthenticated        = errors.New("authentication required")
	ErrForbidden              = errors.New("forbidden")
	ErrSizeLimit              = errors.New("document exceeds slot size limit")
	ErrUnsupportedContentType = errors.New("document must be a pdf")
	ErrEmptyDocument          = errors.New("document is empty")
	ErrTransientIO            = errors.New("storage temporarily unavailable")
	ErrNotificationDelivery   = errors.New("notification delivery failed")
)

// ValidationError carries the failing field identifiers. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Violations.Fields(), ","))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(v validation.Violations) error {
	return &ValidationError{Violations: v}
}

// transient marks a store failure. Writes surface it without retry.
func transient(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrTransientIO, err)
}
