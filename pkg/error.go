package pkg

// Sentinel errors shared by the stand subpackages. Each is an [Error] chain
// whose head is the sentinel message, so callers test them with errors.Is
// and extend them with Wrap or Wrapf.

import (
	"fmt"
	"strings"
)

// Error is a chain of errors ordered from innermost to outermost. It
// renders as the messages joined with ": " and unwraps to its elements.
type Error []error

// ErrNoProject is returned when no stand configuration document can be
// found in the starting directory or any of its ancestors. Wrap it with
// the directory where the search began.
var ErrNoProject = MakeErrorf("no stand configuration found")

// ErrLoadConfig is returned when reading or decoding the configuration
// document fails. Wrap it with the underlying I/O or decode error.
var ErrLoadConfig = MakeErrorf("load configuration")

// ErrUnknownEnvironment is returned when a requested environment name is
// not defined in the configuration document. Wrap it with the name that
// was requested and any close matches.
var ErrUnknownEnvironment = MakeErrorf("unknown environment")

// ErrUnknownVariable is returned when a requested variable is not present
// in a resolved environment.
var ErrUnknownVariable = MakeErrorf("unknown variable")

// ErrEncryptionDisabled is returned when an operation requires encryption
// but the configuration document carries no public key.
var ErrEncryptionDisabled = MakeErrorf("encryption not enabled for project")

// ErrReadInput is returned when reading input fails. Wrap it with the
// underlying I/O error.
var ErrReadInput = MakeErrorf("failed to read input")

// MakeError constructs an [Error] by flattening the given errors in order,
// innermost first. Nil arguments are skipped; an all-nil call returns nil.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an [Error] from a formatted message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error joins the messages of the chain with ": ", innermost first.
func (e Error) Error() string {
	msgs := make([]string, len(e))

	for i, err := range e {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, ": ")
}

// Wrap appends one or more errors to the chain.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the chain.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap exposes the chain's elements to the errors package.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively flattens err and everything it wraps into a
// single chain, innermost first.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

	case interface{ Unwrap() error }:
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
