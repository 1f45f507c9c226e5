package registry

import (
	"errors"
	"fmt"
)

// Error represents a registry operation failure.
//
// The only registry-level failure is INDEX_NOT_FOUND: the supplied index
// was never assigned by Create. Storage I/O failures are not wrapped in
// Error; they propagate from the backend with their own context.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Index is the board index the operation targeted.
	Index uint64
}

// ErrorCode categorizes registry errors.
type ErrorCode string

// ErrCodeIndexNotFound indicates the index was never assigned.
const ErrCodeIndexNotFound ErrorCode = "INDEX_NOT_FOUND"

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (index=%d)", e.Code, e.Message, e.Index)
}

// NewNotFoundError creates an Error for an unassigned index.
func NewNotFoundError(index uint64) *Error {
	return &Error{
		Code:    ErrCodeIndexNotFound,
		Message: "no board at index",
		Index:   index,
	}
}

// IsNotFound returns true if the error is an unassigned-index failure.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeIndexNotFound
	}
	return false
}
