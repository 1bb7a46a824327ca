// Package meshio reads and writes polyhedral meshes and point clouds.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// maxPrealloc caps the slice capacity reserved from a header's counts.
// Larger meshes grow as their lines are read.
const maxPrealloc = 1 << 16

// lineScanner yields non-empty lines with '#' comments stripped, tracking
// line numbers for error messages.
type lineScanner struct {
	scanner *bufio.Scanner
	line    int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{scanner: bufio.NewScanner(r)}
}

// next returns the fields of the next meaningful line, or io.EOF.
func (s *lineScanner) next() ([]string, error) {
	for s.scanner.Scan() {
		s.line++
		text := s.scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ',' || r == '\r'
		})
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read")
	}
	return nil, io.EOF
}

func parseVec3(fields []string) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	if len(fields) < 3 {
		return v, errors.Errorf("want 3 coordinates, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, errors.Wrapf(err, "coordinate %d", i)
		}
		v[i] = f
	}
	return v, nil
}

func parseInts(fields []string) ([]int, error) {
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i)
		}
		values[i] = v
	}
	return values, nil
}

// ReadOFF parses an Object File Format mesh: an "OFF" header, a counts line
// "vertices faces edges", the vertex coordinates, then one line per face
// "n i0 i1 ... in-1". Colors trailing a face are ignored.
func ReadOFF(r io.Reader) ([]mgl64.Vec3, [][]int, error) {
	s := newLineScanner(r)

	fields, err := s.next()
	if err != nil {
		return nil, nil, errors.Wrap(unexpectedEOF(err), "off: header")
	}
	if fields[0] != "OFF" {
		return nil, nil, errors.Errorf("off: line %d: want OFF header, got %q", s.line, fields[0])
	}
	// The counts may share the header line.
	fields = fields[1:]
	if len(fields) == 0 {
		if fields, err = s.next(); err != nil {
			return nil, nil, errors.Wrap(unexpectedEOF(err), "off: counts")
		}
	}

	counts, err := parseInts(fields)
	if err != nil || len(counts) < 2 || counts[0] < 0 || counts[1] < 0 {
		return nil, nil, errors.Errorf("off: line %d: bad counts %q", s.line, strings.Join(fields, " "))
	}

	vertices := make([]mgl64.Vec3, 0, min(counts[0], maxPrealloc))
	for i := 0; i < counts[0]; i++ {
		fields, err := s.next()
		if err != nil {
			return nil, nil, errors.Wrapf(unexpectedEOF(err), "off: vertex %d", i)
		}
		v, err := parseVec3(fields)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "off: line %d", s.line)
		}
		vertices = append(vertices, v)
	}

	faces := make([][]int, 0, min(counts[1], maxPrealloc))
	for i := 0; i < counts[1]; i++ {
		fields, err := s.next()
		if err != nil {
			return nil, nil, errors.Wrapf(unexpectedEOF(err), "off: face %d", i)
		}
		values, err := parseInts(fields[:1])
		if err != nil || values[0] < 0 || values[0] > len(fields)-1 {
			return nil, nil, errors.Errorf("off: line %d: bad face %q", s.line, strings.Join(fields, " "))
		}
		face, err := parseInts(fields[1 : 1+values[0]])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "off: line %d", s.line)
		}
		faces = append(faces, face)
	}

	return vertices, faces, nil
}

// WriteOFF writes a mesh in Object File Format.
func WriteOFF(w io.Writer, vertices []mgl64.Vec3, faces [][]int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "OFF")
	fmt.Fprintf(bw, "%d %d %d\n", len(vertices), len(faces), countEdges(faces))
	for _, v := range vertices {
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(v.X()), formatFloat(v.Y()), formatFloat(v.Z()))
	}
	for _, face := range faces {
		fmt.Fprint(bw, len(face))
		for _, index := range face {
			fmt.Fprintf(bw, " %d", index)
		}
		fmt.Fprintln(bw)
	}

	return errors.Wrap(bw.Flush(), "off: write")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// countEdges counts undirected edges, each once.
func countEdges(faces [][]int) int {
	seen := make(map[[2]int]bool)
	for _, face := range faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			seen[[2]int{min(a, b), max(a, b)}] = true
		}
	}
	return len(seen)
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
