package field

import (
	"errors"
	"fmt"
)

// Domain errors for sampling operations.
var (
	// ErrParameterBounds indicates a mode number or domain size outside its valid range.
	ErrParameterBounds = errors.New("field: parameter out of valid bounds")

	// ErrInvalidGrid indicates a grid that cannot be built (fewer than two samples per axis).
	ErrInvalidGrid = errors.New("field: invalid grid")

	// ErrConstantField indicates min-max normalisation of a field with max == min.
	ErrConstantField = errors.New("field: constant field cannot be normalised")
)

// EvalError wraps a special-function failure with the grid point it occurred at.
type EvalError struct {
	Family   Family
	Row, Col int
	Wrapped  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("field: %s at (%d, %d): %v", e.Family, e.Row, e.Col, e.Wrapped)
}

func (e *EvalError) Unwrap() error {
	return e.Wrapped
}
