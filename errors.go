package kmeansgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a parameter or input fails validation:
	// non-positive k or maxIterations, negative tolerance, an empty point set,
	// k exceeding the point count where clamping does not apply, or a
	// mismatched initial-centroid count in strict mode.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDimension is matched (via errors.Is) by every *ErrDimensionMismatch.
	ErrDimension = errors.New("dimension mismatch")

	// ErrInvalidState is returned when an engine operation is called in the
	// wrong lifecycle state, e.g. Run before Initialize.
	ErrInvalidState = errors.New("invalid engine state")
)

// ErrDimensionMismatch indicates that two points (or a point and a centroid)
// have different dimensions.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrDimension }

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func invalidState(op string, s State) error {
	return fmt.Errorf("%w: %s not allowed in state %s", ErrInvalidState, op, s)
}
