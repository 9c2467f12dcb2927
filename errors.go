package spanvec

import (
	"errors"
	"fmt"
)

// ErrInvariant is the sentinel wrapped by every [InvariantError].
var ErrInvariant = errors.New("spanvec: invariant violated")

// InvariantError describes a broken run-list or cursor invariant found by a
// consistency check. These checks only run when a vector is built with
// [WithConsistencyChecks] or when [Vector.Validate] is called explicitly.
type InvariantError struct {
	// Op is the operation that detected the violation ("set", "at", "register", ...).
	Op string
	// Index is the run or entry index involved, or -1 if not applicable.
	Index int
	// Reason is a short human readable description.
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("spanvec: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("spanvec: %s: index %d: %s", e.Op, e.Index, e.Reason)
}

// Unwrap returns [ErrInvariant].
func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// failInvariant logs err and panics with it. Consistency failures are
// programming errors in the caller, so they are never returned.
func failInvariant(err *InvariantError) {
	Logger().Error("spanvec: consistency check failed",
		"op", err.Op, "index", err.Index, "reason", err.Reason)
	panic(err)
}

// FailInvariant is the exported form of the consistency failure path, for
// sibling packages that keep their own debug checks.
func FailInvariant(op string, index int, reason string) {
	failInvariant(&InvariantError{Op: op, Index: index, Reason: reason})
}
