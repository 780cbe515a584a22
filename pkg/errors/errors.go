package errors

import (
	"fmt"
)

// ParseError represents a template document parsing failure with optional
// line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures template validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ResolveError represents a failure while resolving an external asset,
// such as a logo lookup for a themed template.
type ResolveError struct {
	TemplateID string
	Err        error
}

// NewResolveError constructs a ResolveError.
func NewResolveError(templateID string, err error) error {
	return &ResolveError{TemplateID: templateID, Err: err}
}

func (e *ResolveError) Error() string {
	if e == nil {
		return ""
	}
	if e.TemplateID != "" {
		return fmt.Sprintf("resolve error for template %s: %v", e.TemplateID, e.Err)
	}
	return fmt.Sprintf("resolve error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ResolveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
