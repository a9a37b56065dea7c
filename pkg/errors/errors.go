package errors

import (
	"errors"
	"fmt"
)

// Standard error types
var (
	// Builder errors. Always returned to the caller.
	ErrUnsupportedValueKind = errors.New("unsupported value kind")
	ErrMalformedTree        = errors.New("malformed field tree")
	ErrTypeMismatch         = errors.New("type mismatch")

	// Transport errors. Subject to the caller's raise-on-error choice.
	ErrTransport = errors.New("transport error")
	ErrDecoding  = errors.New("decoding error")

	ErrAuthentication = errors.New("authentication error")
	ErrConfiguration  = errors.New("configuration error")
	ErrValidation     = errors.New("validation error")
)

// WrapError wraps an error with a standard error type
func WrapError(err error, errType error, message string) error {
	return fmt.Errorf("%w: %s: %w", errType, message, err)
}

// Is provides a convenience wrapper around errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As provides a convenience wrapper around errors.As
func As(err error, target any) bool {
	return errors.As(err, target)
}
