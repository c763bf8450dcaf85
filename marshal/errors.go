package marshal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue reports a value whose representation cannot satisfy
	// the type it is being packed under.
	ErrInvalidValue = errors.New("value not valid for type")
	// ErrMalformedValue reports wire bytes whose length does not match the
	// type they are being unpacked under.
	ErrMalformedValue = errors.New("malformed wire value")
)

// Error wraps a sentinel error with additional context
type Error struct {
	Err     error  // The underlying sentinel error
	Context string // Additional error context
}

// Error satisfies the error interface
func (e *Error) Error() string {
	if e.Context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Context)
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a new marshaling error with context
func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err:     err,
		Context: fmt.Sprintf(format, args...),
	}
}
