package errors

import (
	"fmt"
)

// KeepError is the structured error type for Hollowkeep.
// It carries a stable code plus context for logging and user
// presentation.
type KeepError struct {
	// Code is the unique error code (e.g., "ERR_201_WORLD_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, etc.).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *KeepError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *KeepError) Unwrap() error {
	return e.Cause
}

// Is matches errors by code, so errors.Is works across wrapping.
func (e *KeepError) Is(target error) bool {
	if t, ok := target.(*KeepError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *KeepError) WithDetail(key, value string) *KeepError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *KeepError) WithSuggestion(suggestion string) *KeepError {
	e.Suggestion = suggestion
	return e
}

// New creates a new KeepError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *KeepError {
	return &KeepError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a KeepError from an existing error.
// The error's message becomes the KeepError message.
// Returns nil if err is nil.
func Wrap(code string, err error) *KeepError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *KeepError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// WorldError creates a world-file validation error.
func WorldError(message string, cause error) *KeepError {
	return New(ErrCodeWorldInvalid, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *KeepError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity.
// Fatal errors should abort the current operation.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if ke, ok := err.(*KeepError); ok {
		return ke.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a KeepError.
// Returns empty string if not a KeepError.
func GetCode(err error) string {
	if ke, ok := err.(*KeepError); ok {
		return ke.Code
	}
	return ""
}
