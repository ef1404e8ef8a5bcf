package errors

import (
	"fmt"
)

// ParseError represents a failure to decode configuration or block data, with
// optional source metadata.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures tool configuration validation issues.
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

// ToolError indicates issues within block tool registration or lookup.
type ToolError struct {
	Tool    string
	Message string
	Err     error
}

// NewToolError constructs a ToolError for the given tool name.
func NewToolError(tool string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ToolError{Tool: tool, Message: message, Err: err}
}

func (e *ToolError) Error() string {
	if e == nil {
		return ""
	}
	if e.Tool != "" {
		return fmt.Sprintf("tool error [%s]: %s", e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ToolError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
