package qhull

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateInput is wrapped by every DegenerateInputError.
	ErrDegenerateInput = errors.New("qhull: degenerate input")

	// ErrInvalidTolerance is returned when the tolerance is not a positive finite number.
	ErrInvalidTolerance = errors.New("qhull: tolerance must be a positive finite number")

	// ErrNonFinite is returned when an input coordinate is NaN or infinite.
	ErrNonFinite = errors.New("qhull: non-finite coordinate")
)

// DegenerateReason tells why no initial simplex could be formed.
type DegenerateReason int

const (
	// TooFewPoints means fewer than 4 distinct points remained after duplicates collapsed.
	TooFewPoints DegenerateReason = iota
	// Coincident means every point lies within tolerance of a single point.
	Coincident
	// Collinear means every point lies within tolerance of a single line.
	Collinear
	// Coplanar means every point lies within tolerance of a single plane.
	Coplanar
)

func (r DegenerateReason) String() string {
	switch r {
	case TooFewPoints:
		return "too few distinct points"
	case Coincident:
		return "points are coincident"
	case Collinear:
		return "points are collinear"
	case Coplanar:
		return "points are coplanar"
	}
	return fmt.Sprintf("DegenerateReason(%d)", int(r))
}

// DegenerateInputError reports that the input cannot span a 3D hull.
// No partial hull is ever returned alongside it.
type DegenerateInputError struct {
	Reason    DegenerateReason
	Points    int // distinct points after duplicates collapsed
	Tolerance float64
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("qhull: degenerate input: %v (%d distinct points, tolerance %g)", e.Reason, e.Points, e.Tolerance)
}

func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}
