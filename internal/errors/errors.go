// Package errors contains helper functions for wrapping errors with stack traces and panic recovery.
package errors

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New creates a new error from the given value and wraps it in an Error type that contains the stack trace.
func New(val any) error {
	return goerrors.Wrap(val, 1)
}

// Errorf creates a new error and wraps it in an Error type that contains the stack trace.
func Errorf(message string, args ...any) error {
	err := fmt.Errorf(message, args...)
	return goerrors.Wrap(err, 1)
}

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given
// error already has a stack trace, it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// ErrorStack returns the callstack formatted the same way that go does in runtime/debug.Stack().
// Returns an empty string if the error carries no stack trace.
func ErrorStack(err error) string {
	if err == nil {
		return ""
	}

	goerr := new(goerrors.Error)
	if !As(err, &goerr) {
		return ""
	}

	return string(goerr.Stack())
}

// Recover tries to recover from panics, and if it succeeds, calls the given onPanic function with an error that
// explains the cause of the panic. This function should only be called from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec)
		}

		onPanic(WithStackTrace(err))
	}
}
