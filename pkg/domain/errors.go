package domain

import (
	"errors"
	"fmt"
)

// Error represents a business-rule failure with a code and message.
// Codes map one-to-one onto HTTP statuses at the API boundary; the core
// never retries these automatically.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeDuplicateName      = "DUPLICATE_NAME"
	ErrCodeInactiveExperiment = "INACTIVE_EXPERIMENT"
	ErrCodeCapacityExceeded   = "CAPACITY_EXCEEDED"
	ErrCodeInsufficientData   = "INSUFFICIENT_DATA"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s does not exist", resource),
	}
}

// NewDuplicateNameError creates a new duplicate name error
func NewDuplicateNameError(name string) error {
	return &Error{
		Code:    ErrCodeDuplicateName,
		Message: fmt.Sprintf("name %q is already taken", name),
	}
}

// NewInactiveExperimentError creates a new inactive experiment error
func NewInactiveExperimentError(name string) error {
	return &Error{
		Code:    ErrCodeInactiveExperiment,
		Message: fmt.Sprintf("experiment %q is not active", name),
	}
}

// NewCapacityExceededError creates a new capacity exceeded error
func NewCapacityExceededError(limit int) error {
	return &Error{
		Code:    ErrCodeCapacityExceeded,
		Message: fmt.Sprintf("experiment has reached its limit of %d subjects. Please upgrade your plan.", limit),
	}
}

// NewInsufficientDataError creates a new insufficient data error
func NewInsufficientDataError() error {
	return &Error{
		Code:    ErrCodeInsufficientData,
		Message: "experiment does not have any subjects yet",
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() error {
	return &Error{
		Code:    ErrCodeUnauthorized,
		Message: "Authentication required",
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &Error{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// Helper functions to check error types

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return GetErrorCode(err) == ErrCodeNotFound
}

// IsDuplicateName checks if the error is a duplicate name error
func IsDuplicateName(err error) bool {
	return GetErrorCode(err) == ErrCodeDuplicateName
}

// IsInactiveExperiment checks if the error is an inactive experiment error
func IsInactiveExperiment(err error) bool {
	return GetErrorCode(err) == ErrCodeInactiveExperiment
}

// IsCapacityExceeded checks if the error is a capacity exceeded error
func IsCapacityExceeded(err error) bool {
	return GetErrorCode(err) == ErrCodeCapacityExceeded
}

// IsInsufficientData checks if the error is an insufficient data error
func IsInsufficientData(err error) bool {
	return GetErrorCode(err) == ErrCodeInsufficientData
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return GetErrorCode(err) == ErrCodeValidation
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return GetErrorCode(err) == ErrCodeUnauthorized
}

// GetErrorCode extracts the code from a domain error
func GetErrorCode(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternal
}
