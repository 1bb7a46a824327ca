package meshio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/akmonengine/polyhedra"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pyramidOFF = `OFF
# square pyramid
5 5 8
1 1 0
1 -1 0
-1 -1 0
-1 1 0
0 0 2
3 0 1 4
3 1 2 4
3 2 3 4
3 3 0 4
4 0 1 2 3  255 0 0
`

func TestReadOFF(t *testing.T) {
	vertices, faces, err := ReadOFF(strings.NewReader(pyramidOFF))
	require.NoError(t, err)

	assert.Len(t, vertices, 5)
	assert.Equal(t, mgl64.Vec3{0, 0, 2}, vertices[4])
	require.Len(t, faces, 5)
	assert.Equal(t, []int{0, 1, 2, 3}, faces[4])

	_, err = polyhedra.NewPolyhedron(vertices, faces)
	assert.NoError(t, err)
}

func TestReadOFFCountsOnHeaderLine(t *testing.T) {
	vertices, faces, err := ReadOFF(strings.NewReader("OFF 4 1 0\n0 0 0\n1 0 0\n0 1 0\n0 0 1\n3 0 1 2\n"))
	require.NoError(t, err)
	assert.Len(t, vertices, 4)
	assert.Equal(t, [][]int{{0, 1, 2}}, faces)
}

func TestReadOFFErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "off: header"},
		{"wrong header", "PLY\n", "want OFF header"},
		{"bad counts", "OFF\nfive 5 0\n", "bad counts"},
		{"missing vertex", "OFF\n2 0 0\n0 0 0\n", "off: vertex 1"},
		{"bad coordinate", "OFF\n1 0 0\n0 x 0\n", "off: line 3"},
		{"short face", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1\n", "bad face"},
		{"missing face", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n", "off: face 0"},
		{"huge vertex count", "OFF\n4611686018427387904 0 0\n", "off: vertex 0"},
		{"huge face length", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n9223372036854775807 0 1 2\n", "bad face"},
		{"huge face count", "OFF\n3 4611686018427387904 0\n0 0 0\n1 0 0\n0 1 0\n", "off: face 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadOFF(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadOFFTruncatedIsUnexpectedEOF(t *testing.T) {
	_, _, err := ReadOFF(strings.NewReader("OFF\n2 0 0\n0 0 0\n"))
	assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(err))
}

func TestWriteOFFRoundTrip(t *testing.T) {
	vertices, faces := polyhedra.DodecahedronTable(1.5)

	var buf bytes.Buffer
	require.NoError(t, WriteOFF(&buf, vertices, faces))
	assert.True(t, strings.HasPrefix(buf.String(), "OFF\n20 12 30\n"))

	gotVertices, gotFaces, err := ReadOFF(&buf)
	require.NoError(t, err)
	assert.Equal(t, vertices, gotVertices)
	assert.Equal(t, faces, gotFaces)
}

func TestReadPoints(t *testing.T) {
	input := "# cloud\n1 2 3\n\n4,5,6 # trailing\n\t-1e-3\t0\t7.5\r\n"

	points, err := ReadPoints(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []mgl64.Vec3{{1, 2, 3}, {4, 5, 6}, {-1e-3, 0, 7.5}}, points)

	_, err = ReadPoints(strings.NewReader("1 2 3\n1 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadPoints(strings.NewReader("1 2 z\n"))
	assert.Error(t, err)
}

func TestWriteSTL(t *testing.T) {
	vertices, faces := polyhedra.CubeTable(2)

	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, "cube", vertices, faces))

	// 6 quads fan into 12 triangles of 50 bytes each.
	data := buf.Bytes()
	require.Len(t, data, 80+4+12*50)
	assert.Equal(t, "cube", string(bytes.TrimRight(data[:80], "\x00")))
	assert.Equal(t, uint32(12), binary.LittleEndian.Uint32(data[80:84]))

	// First triangle: bottom face, normal -z.
	record := data[84 : 84+50]
	nz := math.Float32frombits(binary.LittleEndian.Uint32(record[8:12]))
	assert.Equal(t, float32(-1), nz)
	v1x := math.Float32frombits(binary.LittleEndian.Uint32(record[12:16]))
	assert.Equal(t, float32(-1), v1x)
}

func TestWriteSTLErrors(t *testing.T) {
	vertices := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	var buf bytes.Buffer
	assert.Error(t, WriteSTL(&buf, "", vertices, [][]int{{0, 1}}))
	assert.Error(t, WriteSTL(&buf, "", vertices, [][]int{{0, 1, 5}}))
	assert.Zero(t, buf.Len())
}
