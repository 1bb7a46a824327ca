package qhull

import (
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceVertices returns the sorted input indices of the hull vertices
// found by an independent QuickHull implementation.
func referenceVertices(points []mgl64.Vec3) []int {
	cloud := make([]r3.Vector, len(points))
	for i, p := range points {
		cloud[i] = r3.Vector{X: p.X(), Y: p.Y(), Z: p.Z()}
	}

	mesh := new(quickhull.QuickHull).ConvexHull(cloud, true, true, 1e-10)

	seen := make(map[int]bool)
	var indices []int
	for _, i := range mesh.Indices {
		if !seen[i] {
			seen[i] = true
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)

	return indices
}

func hullVertexIndices(h *Hull) []int {
	var indices []int
	for _, v := range h.Vertices() {
		indices = append(indices, v.Index)
	}
	sort.Ints(indices)
	return indices
}

func TestVerticesMatchReference(t *testing.T) {
	clouds := map[string][]mgl64.Vec3{
		"cube":       unitCube(),
		"random 64":  randomCloud(100, 64),
		"random 256": randomCloud(101, 256),
		"random 1k":  randomCloud(102, 1000),
		"sphere 150": sphereCloud(103, 150),
	}

	for name, points := range clouds {
		t.Run(name, func(t *testing.T) {
			h, err := Build(points, WithTolerance(1e-10))
			require.NoError(t, err)

			assert.Equal(t, referenceVertices(points), hullVertexIndices(h))
		})
	}
}

func TestBuildAll(t *testing.T) {
	clouds := [][]mgl64.Vec3{
		unitCube(),
		{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}},
		randomCloud(5, 200),
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		sphereCloud(6, 80),
	}

	for _, workers := range []int{0, 1, 2, 16} {
		results := BuildAll(clouds, workers)
		require.Len(t, results, len(clouds))

		require.NoError(t, results[0].Err)
		assert.Len(t, results[0].Hull.Vertices(), 8)

		assert.ErrorIs(t, results[1].Err, ErrDegenerateInput)
		assert.Nil(t, results[1].Hull)

		for _, i := range []int{2, 3, 4} {
			require.NoError(t, results[i].Err)

			single, err := Build(clouds[i])
			require.NoError(t, err)
			assert.Equal(t, hullVertexIndices(single), hullVertexIndices(results[i].Hull))
		}
	}
}

func TestBuildAllEmpty(t *testing.T) {
	assert.Empty(t, BuildAll(nil, 4))
}
