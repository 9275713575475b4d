package config

import (
	"fmt"
	"strings"
)

// ValidationError reports a structural rule violation in the document.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + e.Message
}

// MissingFieldError reports a required document field that is absent or
// empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InvalidEnvironmentError reports a reference to an environment name that
// is not declared in the document.
type InvalidEnvironmentError struct {
	Name string
}

func (e *InvalidEnvironmentError) Error() string {
	return fmt.Sprintf("unknown environment: %s", e.Name)
}

// CircularReferenceError reports a cycle in the extends graph. Cycle holds
// the names from the first occurrence of the repeated name through its
// repeat, so a cycle of length k is reported with k+1 entries.
type CircularReferenceError struct {
	Cycle []string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf(
		"circular reference in environment inheritance: %s",
		strings.Join(e.Cycle, " -> "),
	)
}

// InterpolationError reports a ${NAME} reference to a process environment
// variable that is not set.
type InterpolationError struct {
	Variable string
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf(
		"environment variable %q referenced in configuration is not set",
		e.Variable,
	)
}

// UnterminatedReferenceError reports a ${ with no closing brace. Offset is
// the byte position of the opening "${" within the value.
type UnterminatedReferenceError struct {
	Offset int
}

func (e *UnterminatedReferenceError) Error() string {
	return fmt.Sprintf(
		"unterminated variable reference at byte %d: missing '}'",
		e.Offset,
	)
}

// EmptyVariableNameError reports a "${}" reference with no variable name.
type EmptyVariableNameError struct{}

func (e *EmptyVariableNameError) Error() string {
	return "empty variable name in ${} reference"
}

// DecodeError reports a failure to read or decode a configuration file.
type DecodeError struct {
	Err  error
	Path string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode configuration %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
