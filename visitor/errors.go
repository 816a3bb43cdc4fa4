package visitor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant marks a defect in the renderer itself: the visitor
	// stack received an event it cannot receive from a well-formed tree.
	ErrInvariant = errors.New("render invariant violated")
	// ErrInvalidConfig is wrapped by Config validation failures.
	ErrInvalidConfig = errors.New("invalid renderer config")
)

type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return ErrInvariant.Error() + ": " + e.Msg
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }

// invariant aborts the current render. Render recovers the panic and
// returns it as an error.
func invariant(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
