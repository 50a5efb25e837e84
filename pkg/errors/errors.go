package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrNotImplemented matches any NotImplementedError via errors.Is.
	ErrNotImplemented = stdErrors.New("not implemented")
	// ErrInvalidState matches any InvalidStateError via errors.Is.
	ErrInvalidState = stdErrors.New("invalid state")
)

// NotImplementedError reports a declared feature that has no implementation,
// such as the action sheet alert style.
type NotImplementedError struct {
	Feature string
}

// NewNotImplementedError constructs a NotImplementedError.
func NewNotImplementedError(feature string) error {
	return &NotImplementedError{Feature: feature}
}

func (e *NotImplementedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Feature != "" {
		return fmt.Sprintf("not implemented: %s", e.Feature)
	}
	return "not implemented"
}

// Is lets errors.Is(err, ErrNotImplemented) succeed.
func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// InvalidStateError reports an operation attempted in a lifecycle state that
// does not allow it.
type InvalidStateError struct {
	Op    string
	State string
}

// NewInvalidStateError constructs an InvalidStateError.
func NewInvalidStateError(op, state string) error {
	return &InvalidStateError{Op: op, State: state}
}

func (e *InvalidStateError) Error() string {
	if e == nil {
		return ""
	}
	if e.State != "" {
		return fmt.Sprintf("invalid state: %s not allowed while %s", e.Op, e.State)
	}
	return fmt.Sprintf("invalid state: %s not allowed", e.Op)
}

// Is lets errors.Is(err, ErrInvalidState) succeed.
func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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
