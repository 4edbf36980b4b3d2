// Package apperrors defines the error kinds the service layer surfaces:
// validation failures, dangling references, and everything else (storage
// errors pass through untouched).
package apperrors

import "errors"

// ValidationError reports a field that failed a structural or semantic rule.
// Nothing is written when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a ValidationError with the given message.
func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ReferenceError reports a reference to a record that does not exist.
type ReferenceError struct {
	Message string
}

func (e *ReferenceError) Error() string { return e.Message }

// IsReference reports whether err is (or wraps) a ReferenceError.
func IsReference(err error) bool {
	var re *ReferenceError
	return errors.As(err, &re)
}

var (
	ErrListingNotFound = &ReferenceError{Message: "listing not found"}
	ErrBookingNotFound = &ReferenceError{Message: "booking not found"}
	ErrReviewNotFound  = &ReferenceError{Message: "review not found"}
)
