// Package apperr defines the error kinds used across git-switch and their
// mapping to process exit codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for exit-code mapping and user messaging.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindExists
	KindInvalidInput
	KindToolFailure
	KindFilesystem
	KindEnvMissing
	KindFormat
)

// ExitCode returns the process exit code for this kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindNotFound:
		return 2
	case KindExists:
		return 3
	case KindInvalidInput:
		return 4
	case KindToolFailure:
		return 5
	case KindFilesystem:
		return 6
	case KindEnvMissing:
		return 7
	case KindFormat:
		return 8
	default:
		return 1
	}
}

// Error is a kind-tagged error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a kind-tagged error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// NotFound reports a missing account, profile, or repository.
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// Exists reports a name collision.
func Exists(format string, args ...any) *Error {
	return New(KindExists, format, args...)
}

// Invalid reports rejected user input.
func Invalid(format string, args ...any) *Error {
	return New(KindInvalidInput, format, args...)
}

// ExitCode resolves the exit code for an arbitrary error.
// Untagged errors map to 1.
func ExitCode(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind.ExitCode()
	}
	return 1
}

// KindOf returns the kind of err, or KindOther for untagged errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindOther
}
