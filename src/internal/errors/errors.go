// Package errors provides domain-specific error types for the dns-blackhole application.
//
// This package defines structured errors with error codes, making it easier to handle
// and test different error conditions consistently across the application.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeFetch indicates a failed HTTP request: transport failure or non-200 status.
	ErrCodeFetch ErrorCode = "FETCH_ERROR"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeIO indicates a local file read or write error.
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewIOError creates a new local I/O error.
func NewIOError(message string, cause error) *Error {
	return Wrap(ErrCodeIO, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}

// FetchError is returned when a list could not be retrieved. Exactly one of
// StatusCode (non-200 response) or Cause (transport failure) is set.
type FetchError struct {
	URL        string
	StatusCode int
	Cause      error
}

// NewStatusError creates a FetchError for a response with an unexpected status code.
func NewStatusError(url string, statusCode int) *FetchError {
	return &FetchError{URL: url, StatusCode: statusCode}
}

// NewTransportError creates a FetchError for a request that produced no usable response.
func NewTransportError(url string, cause error) *FetchError {
	return &FetchError{URL: url, Cause: cause}
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ErrCodeFetch, e.URL, e.Diagnostic())
}

// Diagnostic returns the short human-readable reason of the failure.
func (e *FetchError) Diagnostic() string {
	if e.Cause != nil {
		return fmt.Sprintf("Caught exception - %v", e.Cause)
	}
	return fmt.Sprintf("Status code - %d", e.StatusCode)
}

// Unwrap returns the transport error, if any.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports FetchError as matching any *Error with ErrCodeFetch.
func (e *FetchError) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.Code == ErrCodeFetch
	}
	return false
}

// IsFetchError reports whether err or any error it wraps is a *FetchError.
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return stderrors.As(err, &fetchErr)
}
