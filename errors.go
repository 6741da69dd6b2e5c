package json

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// Primary errors for common cases
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrUnsupportedType = errors.New("unsupported value type")
	ErrInvalidKey      = errors.New("invalid object key")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrProcessorClosed = errors.New("processor is closed")

	// Limit-related errors
	ErrSizeLimit  = errors.New("size limit exceeded")
	ErrDepthLimit = errors.New("depth limit exceeded")
)

// CodecError represents a codec failure with essential context
type CodecError struct {
	Op      string // Operation that failed
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("JSON %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *CodecError) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable identifier for the error cause
func (e *CodecError) Code() string {
	switch {
	case errors.Is(e.Err, ErrInvalidJSON):
		return ErrCodeInvalidJSON
	case errors.Is(e.Err, ErrUnsupportedType):
		return ErrCodeUnsupportedType
	case errors.Is(e.Err, ErrInvalidKey):
		return ErrCodeInvalidKey
	case errors.Is(e.Err, ErrInvalidConfig):
		return ErrCodeInvalidConfig
	case errors.Is(e.Err, ErrSizeLimit):
		return ErrCodeSizeLimit
	case errors.Is(e.Err, ErrDepthLimit):
		return ErrCodeDepthLimit
	case errors.Is(e.Err, ErrProcessorClosed):
		return ErrCodeProcessorClosed
	default:
		return ErrCodeUnknown
	}
}

// Is implements error matching for Go 1.13+ error handling
func (e *CodecError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*CodecError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// SyntaxError describes the first position at which a JSON document
// became unparsable. Line and Column are 1-based and Offset is 0-based.
// Column and Offset count bytes, not runes, so a multi-byte rune
// earlier on the line advances the column by its encoded length.
type SyntaxError struct {
	Message string // What the parser expected or rejected
	Line    int    // 1-based line of the failure
	Column  int    // 1-based byte column of the failure
	Offset  int    // 0-based absolute byte offset of the failure
	Excerpt string // Offending fragment of the input
}

func (e *SyntaxError) Error() string {
	if e.Excerpt != "" {
		return fmt.Sprintf("invalid JSON at line %d, column %d (offset %d): %s near %q",
			e.Line, e.Column, e.Offset, e.Message, e.Excerpt)
	}
	return fmt.Sprintf("invalid JSON at line %d, column %d (offset %d): %s",
		e.Line, e.Column, e.Offset, e.Message)
}

// Unwrap lets callers match syntax errors with errors.Is(err, ErrInvalidJSON)
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidJSON
}

// Code returns the machine-readable identifier for syntax failures
func (e *SyntaxError) Code() string {
	return ErrCodeInvalidJSON
}

// Error helper functions for creating consistent error messages

// newOperationError creates a CodecError for operation failures
func newOperationError(operation, message string, err error) error {
	return &CodecError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// newSizeLimitError creates a CodecError for size limit violations
func newSizeLimitError(operation string, actual, limit int64) error {
	return &CodecError{
		Op:      operation,
		Message: fmt.Sprintf("size %d exceeds limit %d", actual, limit),
		Err:     ErrSizeLimit,
	}
}

// newUnsupportedTypeError creates a CodecError for values outside the defined variants
func newUnsupportedTypeError(operation, message string) error {
	return &CodecError{
		Op:      operation,
		Message: message,
		Err:     ErrUnsupportedType,
	}
}

// newInvalidKeyError creates a CodecError for unencodable object keys
func newInvalidKeyError(operation, message string) error {
	return &CodecError{
		Op:      operation,
		Message: message,
		Err:     ErrInvalidKey,
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, op, message string) error {
	if err == nil {
		return nil
	}
	return &CodecError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}
