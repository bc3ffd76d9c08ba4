package strspan

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTerminated means the last character of a declared length is not a terminator.
	ErrNotTerminated = errors.New("strspan: last character is not a terminator")
	// ErrEmptyZ means the declared length leaves no room for the terminator.
	ErrEmptyZ        = errors.New("strspan: terminated span needs at least one character")
)

// ConstraintError reports a terminated view that could not be built. No view is
// produced alongside it.
type ConstraintError struct {
	Len int // declared length, terminator included
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("strspan: declared length %d: %v", e.Len, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }
