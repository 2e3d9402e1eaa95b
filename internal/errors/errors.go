package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")

	ErrShape         = errors.New("unsupported JSON shape")
	ErrArity         = errors.New("unsupported array length")
	ErrDiscriminator = errors.New("missing or unknown discriminator")
	ErrConstruction  = errors.New("unsupported payload type")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput         ErrorType = "input"
	ErrorTypeParsing       ErrorType = "parsing"
	ErrorTypeShape         ErrorType = "shape"
	ErrorTypeArity         ErrorType = "arity"
	ErrorTypeDiscriminator ErrorType = "discriminator"
	ErrorTypeConstruction  ErrorType = "construction"
	ErrorTypeConfig        ErrorType = "config"
	ErrorTypeOutput        ErrorType = "output"
	ErrorTypeUnknown       ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// DecodeError reports a JSON value that one of the variant or union
// converters could not accept. Type is one of ErrorTypeShape,
// ErrorTypeArity or ErrorTypeDiscriminator.
type DecodeError struct {
	Type     ErrorType
	Target   string   // Go type being decoded
	Expected []string // accepted shapes, lengths or discriminator values
	Actual   string   // token kind, length or discriminator value seen
	Field    string   // discriminator field, if any
}

// Error implements error interface
func (e *DecodeError) Error() string {
	switch e.Type {
	case ErrorTypeArity:
		return fmt.Sprintf("cannot decode %s: array must contain exactly %s elements, got %s",
			e.Target, joinAlternatives(e.Expected), e.Actual)
	case ErrorTypeDiscriminator:
		if e.Actual == "" {
			return fmt.Sprintf("cannot decode %s: missing %q discriminator", e.Target, e.Field)
		}
		return fmt.Sprintf("cannot decode %s: unknown %s %s %q (valid values are %s)",
			e.Target, e.Target, e.Field, e.Actual, strings.Join(e.Expected, ", "))
	default:
		return fmt.Sprintf("cannot decode JSON %s into %s: expected %s",
			e.Actual, e.Target, joinAlternatives(e.Expected))
	}
}

// Unwrap returns the sentinel matching the error type
func (e *DecodeError) Unwrap() error {
	switch e.Type {
	case ErrorTypeArity:
		return ErrArity
	case ErrorTypeDiscriminator:
		return ErrDiscriminator
	default:
		return ErrShape
	}
}

// Is implements errors.Is for comparison
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewShapeError reports a token kind that target does not support.
func NewShapeError(target, actual string, expected ...string) *DecodeError {
	return &DecodeError{
		Type:     ErrorTypeShape,
		Target:   target,
		Expected: expected,
		Actual:   actual,
	}
}

// NewArityError reports an array length that target does not support.
func NewArityError(target string, length int, allowed ...int) *DecodeError {
	expected := make([]string, len(allowed))
	for i, n := range allowed {
		expected[i] = strconv.Itoa(n)
	}
	return &DecodeError{
		Type:     ErrorTypeArity,
		Target:   target,
		Expected: expected,
		Actual:   strconv.Itoa(length),
	}
}

// NewDiscriminatorError reports a discriminator value outside known.
func NewDiscriminatorError(target, field, value string, known []string) *DecodeError {
	return &DecodeError{
		Type:     ErrorTypeDiscriminator,
		Target:   target,
		Expected: known,
		Actual:   value,
		Field:    field,
	}
}

// NewMissingDiscriminatorError reports an object without its discriminator field.
func NewMissingDiscriminatorError(target, field string) *DecodeError {
	return &DecodeError{
		Type:   ErrorTypeDiscriminator,
		Target: target,
		Field:  field,
	}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewConstructionError reports a payload whose Go type target cannot hold
func NewConstructionError(target string, payload interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeConstruction,
		Message: fmt.Sprintf("cannot construct %s from %T", target, payload),
		Err:     ErrConstruction,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return fmt.Sprintf("Option error: %s", decodeErr.Error())
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeConstruction:
			return fmt.Sprintf("Construction error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide a valid option document."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single option object."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}

func joinAlternatives(items []string) string {
	switch len(items) {
	case 0:
		return "nothing"
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
