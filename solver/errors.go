package solver

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a broken internal assumption. Stages panic with an
// *InvariantError wrapping it; a valid cube never triggers one.
var ErrInvariant = errors.New("solver: invariant violated")

// InvariantError describes which stage found the cube in a state it cannot
// handle.
type InvariantError struct {
	Stage  string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvariant, e.Stage, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// Fail panics with an *InvariantError for the named stage.
func Fail(stage, format string, args ...any) {
	panic(&InvariantError{Stage: stage, Reason: fmt.Sprintf(format, args...)})
}
