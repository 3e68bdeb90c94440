// Package errors provides error wrapping and formatting helpers
// used for all operator-facing diagnostics.
package errors

import (
	stderrors "errors"
	"fmt"
)

func New(text string) error {
	return stderrors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// wrappedError replaces the message of the wrapped error,
// the original error is still available via Unwrap.
type wrappedError struct {
	msg string
	err error
}

func Wrap(err error, msg string) error {
	if err == nil {
		panic(New("error cannot be nil"))
	}
	return &wrappedError{msg: msg, err: err}
}

func Wrapf(err error, format string, a ...any) error {
	return Wrap(err, fmt.Sprintf(format, a...))
}

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.err
}

// PrefixError returns an error formatted as the prefix followed
// by a bullet list with the original error.
func PrefixError(err error, prefix string) error {
	return &prefixedError{prefix: prefix, err: err}
}

func PrefixErrorf(err error, format string, a ...any) error {
	return PrefixError(err, fmt.Sprintf(format, a...))
}

type prefixedError struct {
	prefix string
	err    error
}

func (e *prefixedError) Error() string {
	return Format(e)
}

func (e *prefixedError) Unwrap() error {
	return e.err
}

func (e *prefixedError) MainError() error {
	return New(e.prefix)
}

func (e *prefixedError) WrappedErrors() []error {
	if v, ok := e.err.(MultiError); ok { // nolint: errorlint
		return v.WrappedErrors()
	}
	return []error{e.err}
}
