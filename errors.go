package kdt

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when building an index from zero points.
	ErrEmptyInput = errors.New("at least one point is required")

	// ErrInvalidK is returned when k is negative.
	ErrInvalidK = errors.New("k must be non-negative")

	// ErrNegativeRadius is returned when a radius query is given a
	// negative radius.
	ErrNegativeRadius = errors.New("radius must be non-negative")

	// ErrNilCoords is returned when no coordinate function is supplied.
	ErrNilCoords = errors.New("coordinate function must not be nil")
)

// ErrDimensionMismatch indicates a point/query dimensionality mismatch.
//
// During a build it means some point projected to a coordinate vector whose
// length differs from the first point's. During a query it means the query
// point projected to the wrong length for the tree.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an unusable coordinate-vector length.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
