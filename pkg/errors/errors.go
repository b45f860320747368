package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrFrozen        ErrorCode = "FROZEN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Loader errors
	ErrLoaderNotFound ErrorCode = "LOADER_NOT_FOUND"
	ErrLoaderNoShow   ErrorCode = "LOADER_NO_SHOW"

	// Source errors
	ErrSourceOpen  ErrorCode = "SOURCE_OPEN"
	ErrSourceParse ErrorCode = "SOURCE_PARSE"

	// Instance errors
	ErrInstanceNotFound ErrorCode = "INSTANCE_NOT_FOUND"
)

// DviewError represents a structured error with code and details
type DviewError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DviewError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DviewError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DviewError with the same code
func (e *DviewError) Is(target error) bool {
	var targetErr *DviewError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DviewError with the given code and message
func New(code ErrorCode, message string) *DviewError {
	return &DviewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DviewError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DviewError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a DviewError.
// A nil err yields a nil error.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DviewError) WithDetail(key string, value interface{}) *DviewError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dviewErr *DviewError
	if errors.As(err, &dviewErr) {
		return dviewErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DviewError
func GetErrorCode(err error) ErrorCode {
	var dviewErr *DviewError
	if errors.As(err, &dviewErr) {
		return dviewErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DviewError
func GetErrorDetails(err error) map[string]interface{} {
	var dviewErr *DviewError
	if errors.As(err, &dviewErr) {
		return dviewErr.Details
	}
	return nil
}
