package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Validation errors, raised before any side effect
	ErrInvalidProfile     ErrorCode = "INVALID_PROFILE"
	ErrInvalidCoreVersion ErrorCode = "INVALID_CORE_VERSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"

	// Release lookup errors
	ErrNetwork         ErrorCode = "NETWORK"
	ErrInvalidResponse ErrorCode = "INVALID_RESPONSE"
	ErrNoReleases      ErrorCode = "NO_RELEASES"

	// FileSystem errors
	ErrFilesystem ErrorCode = "FILESYSTEM"

	// Version control errors
	ErrVCS ErrorCode = "VCS"
)

// DistroError represents a structured error with code and details
type DistroError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DistroError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DistroError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DistroError) Is(target error) bool {
	var targetErr *DistroError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DistroError with the given code and message
func New(code ErrorCode, message string) *DistroError {
	return &DistroError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DistroError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DistroError {
	return &DistroError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DistroError
func Wrap(err error, code ErrorCode, message string) *DistroError {
	if err == nil {
		return nil
	}
	return &DistroError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DistroError {
	if err == nil {
		return nil
	}
	return &DistroError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DistroError) WithDetail(key string, value interface{}) *DistroError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var distroErr *DistroError
	if errors.As(err, &distroErr) {
		return distroErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DistroError
func GetErrorCode(err error) ErrorCode {
	var distroErr *DistroError
	if errors.As(err, &distroErr) {
		return distroErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DistroError
func GetErrorDetails(err error) map[string]interface{} {
	var distroErr *DistroError
	if errors.As(err, &distroErr) {
		return distroErr.Details
	}
	return nil
}

// IsRetryable reports whether the failure is transient. Only transport
// failures of the release lookup qualify.
func IsRetryable(err error) bool {
	return IsErrorCode(err, ErrNetwork)
}
