// Package wordml error types. Translator encode/decode itself never
// returns errors — absence and malformed scalars degrade locally — so the
// types here cover the surrounding part access and XML bridging.
package wordml

import (
	"fmt"
)

// ParseError represents a failure to read a part into an element tree.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(message string, cause error) error {
	return &ParseError{
		Message: message,
		Cause:   cause,
	}
}

// PartError represents an error during DOCX package part operations
type PartError struct {
	Operation string
	Part      string
	Cause     error
}

func (e *PartError) Error() string {
	if e.Part != "" && e.Cause != nil {
		return fmt.Sprintf("part error during %s of '%s': %v", e.Operation, e.Part, e.Cause)
	} else if e.Part != "" {
		return fmt.Sprintf("part error during %s of '%s'", e.Operation, e.Part)
	} else if e.Cause != nil {
		return fmt.Sprintf("part error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("part error during %s", e.Operation)
}

func (e *PartError) Unwrap() error {
	return e.Cause
}

// NewPartError creates a new part error
func NewPartError(operation, part string, cause error) error {
	return &PartError{
		Operation: operation,
		Part:      part,
		Cause:     cause,
	}
}

// ConversionError represents an unusable input to a whole-part conversion,
// e.g. handing EncodePart a root element no translator exists for.
type ConversionError struct {
	Root    string
	Message string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error for '%s': %s", e.Root, e.Message)
}

// NewConversionError creates a new conversion error
func NewConversionError(root, message string) error {
	return &ConversionError{
		Root:    root,
		Message: message,
	}
}
