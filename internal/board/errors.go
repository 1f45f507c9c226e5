package board

import (
	"errors"
	"fmt"
)

// FieldError reports a rejected packed buffer. Construction is
// all-or-nothing: when FromBytes returns a FieldError, no board state
// was created.
type FieldError struct {
	// Code identifies the error category.
	Code FieldErrorCode

	// Message is a human-readable description.
	Message string

	// Length is the offending buffer length.
	Length int
}

// FieldErrorCode categorizes field errors.
type FieldErrorCode string

// ErrCodeInvalidFieldLength indicates a packed buffer whose length is
// not exactly FieldLen.
const ErrCodeInvalidFieldLength FieldErrorCode = "INVALID_FIELD_LENGTH"

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (length=%d)", e.Code, e.Message, e.Length)
}

// NewLengthError creates a FieldError for a buffer of the given length.
func NewLengthError(length int) *FieldError {
	return &FieldError{
		Code:    ErrCodeInvalidFieldLength,
		Message: fmt.Sprintf("packed field must be exactly %d bytes", FieldLen),
		Length:  length,
	}
}

// IsInvalidLength returns true if the error is a buffer length rejection.
// Uses errors.As to handle wrapped errors.
func IsInvalidLength(err error) bool {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Code == ErrCodeInvalidFieldLength
	}
	return false
}
