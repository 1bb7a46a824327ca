package polyhedra

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFaceIndex is wrapped by every InvalidFaceIndexError.
	ErrInvalidFaceIndex = errors.New("polyhedra: face index out of range")
	// ErrDegenerateFace is wrapped by every DegenerateFaceError.
	ErrDegenerateFace = errors.New("polyhedra: face has fewer than 3 vertices")
)

// InvalidFaceIndexError reports a face referencing a vertex that does not exist.
type InvalidFaceIndexError struct {
	Face     int // position of the face in the face list
	Index    int // offending vertex index
	Vertices int // size of the vertex table
}

func (e *InvalidFaceIndexError) Error() string {
	return fmt.Sprintf("polyhedra: face %d references vertex %d, want [0, %d)", e.Face, e.Index, e.Vertices)
}

func (e *InvalidFaceIndexError) Unwrap() error {
	return ErrInvalidFaceIndex
}

// DegenerateFaceError reports a face with fewer than 3 indices.
type DegenerateFaceError struct {
	Face int
	Len  int
}

func (e *DegenerateFaceError) Error() string {
	return fmt.Sprintf("polyhedra: face %d has %d vertices, want at least 3", e.Face, e.Len)
}

func (e *DegenerateFaceError) Unwrap() error {
	return ErrDegenerateFace
}
