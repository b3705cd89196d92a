package config

import "fmt"

// ErrorKind discriminates configuration failures. A single tagged type is
// used instead of an error hierarchy; callers branch with errors.As and a
// switch on Kind.
type ErrorKind int

const (
	// KindMissingField reports a required field that is absent (or null,
	// for fields that are not nullable).
	KindMissingField ErrorKind = iota + 1

	// KindTypeMismatch reports a field whose value has the wrong runtime
	// type. No coercion is attempted: "5" is not an integer and "true" is
	// not a boolean.
	KindTypeMismatch

	// KindDefaultConfigInvalid reports that the bundled defaults document
	// failed validation. This is a packaging defect, never user input;
	// callers should fail fast rather than retry.
	KindDefaultConfigInvalid

	// KindUserConfigInvalid reports that a caller-supplied raw
	// configuration failed validation. The caller may fix and resubmit.
	KindUserConfigInvalid

	// KindIO reports that the defaults document could not be read.
	KindIO

	// KindParse reports that the defaults document is not valid JSON.
	KindParse
)

// String returns the kind's name for error messages and logs.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingField:
		return "missing field"
	case KindTypeMismatch:
		return "type mismatch"
	case KindDefaultConfigInvalid:
		return "invalid default configuration"
	case KindUserConfigInvalid:
		return "invalid user configuration"
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the error type for all configuration failures. Field-level
// failures carry Field (and for type mismatches, Expected/Actual); wrapper
// kinds carry Component (the builder that caught the failure) and Err.
type Error struct {
	Kind      ErrorKind
	Component string // sync, pool, transaction, retry, model
	Field     string
	Expected  string
	Actual    string
	Err       error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing required field %q", e.Field)
	case KindTypeMismatch:
		return fmt.Sprintf("field %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
	case KindDefaultConfigInvalid:
		return fmt.Sprintf("invalid %q defaults: %v", e.Component, e.Err)
	case KindUserConfigInvalid:
		return fmt.Sprintf("invalid %q configuration: %v", e.Component, e.Err)
	case KindIO:
		return fmt.Sprintf("read defaults document: %v", e.Err)
	case KindParse:
		return fmt.Sprintf("parse defaults document: %v", e.Err)
	default:
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

func missingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

func typeMismatch(field, expected, actual string) *Error {
	return &Error{Kind: KindTypeMismatch, Field: field, Expected: expected, Actual: actual}
}

// wrapDefault marks err as a defaults-document failure caught at the named
// builder's boundary. Errors already wrapped by an inner builder pass
// through unchanged so the innermost component is the one reported.
func wrapDefault(component string, err error) *Error {
	if e, ok := err.(*Error); ok && (e.Kind == KindDefaultConfigInvalid || e.Kind == KindUserConfigInvalid) {
		return e
	}
	return &Error{Kind: KindDefaultConfigInvalid, Component: component, Err: err}
}

// wrapUser marks err as a user-configuration failure caught at the named
// builder's boundary.
func wrapUser(component string, err error) *Error {
	if e, ok := err.(*Error); ok && (e.Kind == KindDefaultConfigInvalid || e.Kind == KindUserConfigInvalid) {
		return e
	}
	return &Error{Kind: KindUserConfigInvalid, Component: component, Err: err}
}

func ioError(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

func parseError(err error) *Error {
	return &Error{Kind: KindParse, Err: err}
}
