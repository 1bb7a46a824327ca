package polyhedra

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Platonic solid tables. Every table is centered on the origin and scaled so
// that each edge has the requested length.

// TetrahedronTable returns the 4 vertices and 4 faces of a regular tetrahedron.
func TetrahedronTable(edge float64) ([]mgl64.Vec3, [][]int) {
	unit := edge * math.Sqrt2 / 4

	return []mgl64.Vec3{
			{unit, unit, unit},
			{unit, -unit, -unit},
			{-unit, unit, -unit},
			{-unit, -unit, unit},
		}, [][]int{
			{0, 1, 2}, {3, 0, 2}, {0, 1, 3}, {3, 1, 2},
		}
}

// OctahedronTable returns the 6 vertices and 8 faces of a regular octahedron.
func OctahedronTable(edge float64) ([]mgl64.Vec3, [][]int) {
	unit := edge * math.Sqrt2 / 2

	return []mgl64.Vec3{
			{unit, 0, 0},
			{-unit, 0, 0},
			{0, unit, 0},
			{0, -unit, 0},
			{0, 0, unit},
			{0, 0, -unit},
		}, [][]int{
			{2, 4, 1}, {0, 4, 2}, {4, 3, 0}, {1, 3, 4},
			{3, 5, 0}, {1, 5, 3}, {2, 5, 1}, {0, 5, 2},
		}
}

// IcosahedronTable returns the 12 vertices and 20 faces of a regular
// icosahedron, built from three orthogonal golden rectangles.
func IcosahedronTable(edge float64) ([]mgl64.Vec3, [][]int) {
	a := edge * (1 + math.Sqrt(5)) / 4
	b := edge / 2

	return []mgl64.Vec3{
			{0, b, a}, {0, -b, a}, {0, b, -a}, {0, -b, -a},
			{b, a, 0}, {b, -a, 0}, {-b, a, 0}, {-b, -a, 0},
			{a, 0, b}, {a, 0, -b}, {-a, 0, b}, {-a, 0, -b},
		}, [][]int{
			{1, 8, 0}, {1, 5, 7}, {8, 5, 1}, {7, 3, 5}, {5, 9, 3},
			{8, 9, 5}, {3, 2, 9}, {9, 4, 2}, {8, 4, 9}, {0, 4, 8},
			{6, 4, 0}, {6, 2, 4}, {11, 2, 6}, {3, 11, 2}, {0, 6, 10},
			{10, 1, 0}, {10, 7, 1}, {11, 7, 3}, {10, 11, 7}, {10, 11, 6},
		}
}

// DodecahedronTable returns the 20 vertices and 12 pentagonal faces of a
// regular dodecahedron: a cube's corners plus three golden rectangles.
func DodecahedronTable(edge float64) ([]mgl64.Vec3, [][]int) {
	a := edge * (1 + math.Sqrt(5)) / 4
	b := edge * (3 + math.Sqrt(5)) / 4
	c := edge / 2

	return []mgl64.Vec3{
			{a, a, a}, {a, a, -a}, {a, -a, a}, {a, -a, -a},
			{-a, a, a}, {-a, a, -a}, {-a, -a, a}, {-a, -a, -a},
			{0, c, b}, {0, c, -b}, {0, -c, -b}, {0, -c, b},
			{c, b, 0}, {-c, b, 0}, {c, -b, 0}, {-c, -b, 0},
			{b, 0, c}, {-b, 0, c}, {b, 0, -c}, {-b, 0, -c},
		}, [][]int{
			{18, 16, 0, 12, 1},
			{3, 18, 16, 2, 14},
			{3, 10, 9, 1, 18},
			{1, 9, 5, 13, 12},
			{0, 8, 4, 13, 12},
			{2, 16, 0, 8, 11},
			{4, 17, 6, 11, 8},
			{17, 19, 5, 13, 4},
			{19, 7, 15, 6, 17},
			{6, 15, 14, 2, 11},
			{19, 5, 9, 10, 7},
			{7, 10, 3, 14, 15},
		}
}

// CubeTable returns the 8 vertices and 6 square faces of a cube, faces wound
// counter-clockwise seen from outside.
func CubeTable(edge float64) ([]mgl64.Vec3, [][]int) {
	h := edge / 2

	return []mgl64.Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		}, [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4}, // front
			{2, 3, 7, 6}, // back
			{1, 2, 6, 5}, // right
			{0, 4, 7, 3}, // left
		}
}

// NewTetrahedron builds a regular tetrahedron with the given edge length.
func NewTetrahedron(edge float64, opts ...Option) *Polyhedron {
	return mustSolid(TetrahedronTable(edge))(opts...)
}

// NewOctahedron builds a regular octahedron with the given edge length.
func NewOctahedron(edge float64, opts ...Option) *Polyhedron {
	return mustSolid(OctahedronTable(edge))(opts...)
}

// NewIcosahedron builds a regular icosahedron with the given edge length.
func NewIcosahedron(edge float64, opts ...Option) *Polyhedron {
	return mustSolid(IcosahedronTable(edge))(opts...)
}

// NewDodecahedron builds a regular dodecahedron with the given edge length.
func NewDodecahedron(edge float64, opts ...Option) *Polyhedron {
	return mustSolid(DodecahedronTable(edge))(opts...)
}

// NewCube builds a cube with the given edge length.
func NewCube(edge float64, opts ...Option) *Polyhedron {
	return mustSolid(CubeTable(edge))(opts...)
}

// mustSolid binds a static table to NewPolyhedron. The tables are valid by
// construction, so an error is a programming mistake.
func mustSolid(vertices []mgl64.Vec3, faces [][]int) func(opts ...Option) *Polyhedron {
	return func(opts ...Option) *Polyhedron {
		p, err := NewPolyhedron(vertices, faces, opts...)
		if err != nil {
			panic(err)
		}
		return p
	}
}
