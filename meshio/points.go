package meshio

import (
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ReadPoints reads one "x y z" point per line. Fields may be separated by
// spaces, tabs or commas; '#' starts a comment.
func ReadPoints(r io.Reader) ([]mgl64.Vec3, error) {
	s := newLineScanner(r)

	var points []mgl64.Vec3
	for {
		fields, err := s.next()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, err
		}

		if len(fields) != 3 {
			return nil, errors.Errorf("points: line %d: want 3 fields, got %d", s.line, len(fields))
		}
		p, err := parseVec3(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "points: line %d", s.line)
		}
		points = append(points, p)
	}
}
