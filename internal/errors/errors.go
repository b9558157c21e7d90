// Package errors provides the structured error type (ComposeError) used to
// classify composition failures for CLI exit handling and logging.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of a compose error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Composition errors
	CategoryAsset  ErrorCategory = "asset"
	CategoryLink   ErrorCategory = "link"
	CategoryRender ErrorCategory = "render"

	// Supporting infrastructure errors
	CategoryContent    ErrorCategory = "content"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryStore      ErrorCategory = "store"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops the render, no partial output
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
)

// ComposeError is a structured error with category, severity, and context
type ComposeError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ComposeError
type ContextFields map[string]any

// Error implements the error interface
func (e *ComposeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ComposeError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ComposeError) WithContext(key string, value any) *ComposeError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ComposeError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ComposeError {
	return &ComposeError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ComposeError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ComposeError {
	return &ComposeError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// Configuration creates a fatal configuration error (undeclared block,
// malformed site config).
func Configuration(message string) *ComposeError {
	return New(CategoryConfig, SeverityFatal, message)
}

// AssetResolution creates a fatal asset resolution error (static base cannot
// be resolved to a valid path prefix).
func AssetResolution(message string) *ComposeError {
	return New(CategoryAsset, SeverityFatal, message)
}

// LinkResolution creates a recoverable link resolution warning (single
// navigation entry failed to resolve; the entry is dropped).
func LinkResolution(message string) *ComposeError {
	return New(CategoryLink, SeverityWarning, message)
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	var ce *ComposeError
	if errors.As(err, &ce) {
		return ce.Category == category
	}
	return false
}

// IsFatal reports whether an error carries fatal severity. Non-ComposeError
// values are treated as fatal: an unclassified failure must not produce a
// partial Document.
func IsFatal(err error) bool {
	var ce *ComposeError
	if errors.As(err, &ce) {
		return ce.Severity == SeverityFatal
	}
	return err != nil
}

// GetCategory extracts the category from an error, or returns
// CategoryInternal if not a ComposeError
func GetCategory(err error) ErrorCategory {
	var ce *ComposeError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return CategoryInternal
}
