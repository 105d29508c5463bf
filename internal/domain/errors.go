package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation = errors.New("validation error")
	ErrParse      = errors.New("parse error")
)

// ParseErrorMessage is the user-facing text for every ParseError.
const ParseErrorMessage = "Failed to parse XML file. Please ensure it is a valid draw.io diagram."

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Message returns the text shown to the caller: the first field's message.
func (e *ValidationError) Message() string {
	if len(e.Errors) == 0 {
		return ErrValidation.Error()
	}
	return e.Errors[0].Message
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ParseError reports a document that is not well-formed XML or does not have
// the draw.io shape. Err holds the underlying cause for logs.
type ParseError struct {
	Err error
}

// NewParseError wraps cause as a ParseError.
func NewParseError(cause error) *ParseError {
	return &ParseError{Err: cause}
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "parse: invalid document"
	}
	return "parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Message returns the text shown to the caller.
func (e *ParseError) Message() string { return ParseErrorMessage }

// UserMessage returns the caller-facing text for err. Validation and parse
// errors carry their own message; anything else reports err.Error().
func UserMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message()
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Message()
	}
	return err.Error()
}
