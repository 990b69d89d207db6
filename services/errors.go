package services

import (
	"errors"
	"fmt"
)

var (
	ErrTenantNotFound         = errors.New("business not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrCompletedOrderNotFound = errors.New("completed order not found")
	ErrCatalogItemNotFound    = errors.New("catalog item not found")
)

// ValidationError is a client mistake: the request cannot succeed without
// changing its input. Field names the offending input so the UI can react
// without parsing prose.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func newValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
