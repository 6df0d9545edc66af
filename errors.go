package lloyd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a run is configured with
	// unusable input. The concrete error is *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a saved run does not exist.
	ErrNotFound = errors.New("not found")
)

// InvalidArgumentError names the rejected field.
type InvalidArgumentError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(field string, value any, reason string) error {
	return &InvalidArgumentError{Field: field, Value: value, Reason: reason}
}
