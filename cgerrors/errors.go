package cgerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates the input document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedSpecVersion indicates the document is not Swagger 2.0.
	ErrUnsupportedSpecVersion = errors.New("unsupported specification version")

	// ErrReference indicates a $ref could not be resolved.
	ErrReference = errors.New("unresolved reference")

	// ErrValidation indicates document content that cannot be mapped to the view model.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedTarget indicates an unknown dialect or an invalid custom template bundle.
	ErrUnsupportedTarget = errors.New("unsupported target")

	// ErrLint indicates generated source failed linting.
	ErrLint = errors.New("lint failure")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a Swagger document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// VersionError is returned when a document's swagger field is not "2.0".
type VersionError struct {
	// Found is the declared version, empty when the field is missing
	Found string
	// Supported is the only version the generator understands
	Supported string
}

// Error returns a human-readable error message.
func (e *VersionError) Error() string {
	found := e.Found
	if found == "" {
		found = "<missing>"
	}
	msg := "unsupported specification version " + found
	if e.Supported != "" {
		msg += " (only " + e.Supported + " is supported)"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *VersionError) Is(target error) bool {
	return target == ErrUnsupportedSpecVersion
}

// ReferenceError represents a failure to resolve a $ref.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Section is the document section searched, e.g. "parameters"
	Section string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "unresolved reference"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Section != "" {
		msg += " (not found in " + e.Section + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// ValidationError represents document content the view builder cannot classify.
type ValidationError struct {
	// Path is the location of the problematic field (e.g., "paths./pets.get.parameters[0]")
	Path string
	// Field is the specific field name with the issue
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TemplateError is returned when the requested dialect is unknown or a
// custom dialect is requested without the required template pieces.
type TemplateError struct {
	// Dialect is the requested target dialect
	Dialect string
	// Missing lists the template pieces that were required but empty
	Missing []string
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any (e.g. a template syntax error)
	Cause error
}

// Error returns a human-readable error message.
func (e *TemplateError) Error() string {
	msg := "unsupported target"
	if e.Dialect != "" {
		msg += " " + e.Dialect
	}
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(": missing %v template", e.Missing)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TemplateError) Is(target error) bool {
	return target == ErrUnsupportedTarget
}

// LintError carries the first error-class finding reported for generated source.
type LintError struct {
	// Code is the finding code; error-class codes start with "E"
	Code string
	// Reason describes the problem
	Reason string
	// Evidence is the offending source text
	Evidence string
	// Line is the 1-based line of the finding (0 if unknown)
	Line int
}

// Error returns a human-readable error message.
func (e *LintError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "lint failure"
	}
	if e.Evidence != "" {
		msg += " in " + e.Evidence
	}
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *LintError) Is(target error) bool {
	return target == ErrLint
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
