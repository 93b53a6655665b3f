package application

import (
	"fmt"
	"strings"

	"daybook/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateDate checks that value is a well-formed, real calendar date in
// 8-digit form. Returns a ValidationError describing what is wrong.
func ValidateDate(fieldName, value string) error {
	if _, err := domain.ParseEntryDate(value); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: err.Error(),
		}
	}
	return nil
}
