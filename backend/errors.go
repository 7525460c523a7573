package backend

import (
	"errors"
	"fmt"
)

// ErrorKind classifies backend construction failures
type ErrorKind uint8

const (
	InitializationFailure ErrorKind = iota
	InvalidParameter
	UnsupportedBackend
)

func (k ErrorKind) String() string {
	switch k {
	case InitializationFailure:
		return "InitializationFailure"
	case InvalidParameter:
		return "InvalidParameter"
	case UnsupportedBackend:
		return "UnsupportedBackend"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// Error is returned by New and the backend constructors
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: InvalidParameter}) works
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks
var (
	ErrInitializationFailure = &Error{Kind: InitializationFailure}
	ErrInvalidParameter      = &Error{Kind: InvalidParameter}
	ErrUnsupportedBackend    = &Error{Kind: UnsupportedBackend}
)

// AssertionError is the panic value of a failed debug script check
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	return e.Msg
}
