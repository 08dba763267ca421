package profile

import (
	"errors"
	"fmt"
)

// ErrMalformedField is matched by every *MalformedFieldError.
var ErrMalformedField = errors.New("malformed profile field")

// MalformedFieldError describes a field the reconciler could not interpret and
// replaced with its default. It is reported, never returned as a failure.
type MalformedFieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %s: %s", e.Field, e.Reason)
}

func (e *MalformedFieldError) Is(target error) bool {
	return target == ErrMalformedField
}
