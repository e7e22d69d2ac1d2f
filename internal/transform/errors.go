package transform

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a malformed transform request. It signals a
// programming error in operation construction, never a data error.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which builder rejected which value.
type ArgumentError struct {
	Op     string // builder or operation kind, e.g. "reflect"
	Value  string // offending value as given
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v %q", e.Op, ErrInvalidArgument, e.Value)
	}
	return fmt.Sprintf("%s: %v %q: %s", e.Op, ErrInvalidArgument, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(op, value, reason string) error {
	return &ArgumentError{Op: op, Value: value, Reason: reason}
}
