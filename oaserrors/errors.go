package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrLoad indicates the input document could not be read or parsed.
	ErrLoad = errors.New("load error")

	// ErrNoInput indicates no input source was supplied.
	ErrNoInput = errors.New("no input")

	// ErrExtraction indicates the document produced diagnostics and no
	// client was generated.
	ErrExtraction = errors.New("extraction failed")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// LoadError represents a failure to read or parse an input document.
type LoadError struct {
	// Source is the file path or source identifier
	Source string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	msg := "load error"
	if e.Source != "" {
		msg += " in " + e.Source
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
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// ExtractionError reports the diagnostics of a run that produced no output.
type ExtractionError struct {
	// Source is the file path or source identifier
	Source string
	// Issues holds the rendered diagnostics in the order they were raised
	Issues []string
}

// Error returns a summary line followed by one diagnostic per line.
func (e *ExtractionError) Error() string {
	var sb strings.Builder
	sb.WriteString("extraction failed")
	if e.Source != "" {
		sb.WriteString(" for ")
		sb.WriteString(e.Source)
	}
	switch len(e.Issues) {
	case 0:
		return sb.String()
	case 1:
		sb.WriteString(": 1 issue")
	default:
		fmt.Fprintf(&sb, ": %d issues", len(e.Issues))
	}
	for _, issue := range e.Issues {
		sb.WriteString("\n  ")
		sb.WriteString(issue)
	}
	return sb.String()
}

// Is reports whether target matches this error type.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
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

// Is reports whether target matches this error type. A ConfigError that
// reports a missing input also matches ErrNoInput.
func (e *ConfigError) Is(target error) bool {
	if target == ErrConfig {
		return true
	}
	return target == ErrNoInput && errors.Is(e.Cause, ErrNoInput)
}
