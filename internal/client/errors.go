package client

import "fmt"

// ErrorKind separates "fix your configuration" failures from "check your
// network or credentials" failures.
type ErrorKind int

const (
	// KindConfiguration reports that the raw configuration (or the bundled
	// defaults document) failed validation, or names an unsupported
	// dialect. No connection attempt was made.
	KindConfiguration ErrorKind = iota + 1

	// KindAuthenticate reports that the connectivity check against the
	// database failed. The configuration itself was valid.
	KindAuthenticate
)

// Error is the error type for client construction failures.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindConfiguration:
		return fmt.Sprintf("client configuration: %v", e.Err)
	case KindAuthenticate:
		return fmt.Sprintf("authenticate: %v", e.Err)
	default:
		return fmt.Sprintf("client: %v", e.Err)
	}
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }
