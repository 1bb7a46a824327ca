package polyhedra

import (
	"math"
	"testing"

	"github.com/akmonengine/polyhedra/geom"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSolidCounts(t *testing.T) {
	tests := []struct {
		name                   string
		build                  func(edge float64, opts ...Option) *Polyhedron
		vertices, faces, edges int
	}{
		{"tetrahedron", NewTetrahedron, 4, 4, 6},
		{"octahedron", NewOctahedron, 6, 8, 12},
		{"icosahedron", NewIcosahedron, 12, 20, 30},
		{"dodecahedron", NewDodecahedron, 20, 12, 30},
		{"cube", NewCube, 8, 6, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.build(1)

			if got := p.NumVertices(); got != tt.vertices {
				t.Errorf("vertices = %d, want %d", got, tt.vertices)
			}
			if got := len(p.Faces()); got != tt.faces {
				t.Errorf("faces = %d, want %d", got, tt.faces)
			}
			if got := len(p.UniqueEdges()); got != tt.edges {
				t.Errorf("edges = %d, want %d", got, tt.edges)
			}
			if v, e, f := tt.vertices, tt.edges, tt.faces; v-e+f != 2 {
				t.Errorf("V - E + F = %d, want 2", v-e+f)
			}
		})
	}
}

func TestSolidEdgeLengths(t *testing.T) {
	tables := []struct {
		name  string
		table func(edge float64) ([]mgl64.Vec3, [][]int)
	}{
		{"tetrahedron", TetrahedronTable},
		{"octahedron", OctahedronTable},
		{"icosahedron", IcosahedronTable},
		{"dodecahedron", DodecahedronTable},
		{"cube", CubeTable},
	}

	for _, tt := range tables {
		for _, edge := range []float64{1, 2.5} {
			vertices, faces := tt.table(edge)

			for _, e := range UniqueEdges(faces) {
				length := vertices[e[0]].Sub(vertices[e[1]]).Len()
				if math.Abs(length-edge) > 1e-9 {
					t.Errorf("%s(%v): edge %v has length %v", tt.name, edge, e, length)
				}
			}

			if c := geom.Centroid(vertices); !vec3ApproxEqual(c, mgl64.Vec3{}, 1e-12) {
				t.Errorf("%s(%v): centroid = %v, want origin", tt.name, edge, c)
			}
		}
	}
}

func TestSolidFacesArePlanar(t *testing.T) {
	for name, table := range map[string]func(float64) ([]mgl64.Vec3, [][]int){
		"dodecahedron": DodecahedronTable,
		"cube":         CubeTable,
	} {
		vertices, faces := table(1)
		for i, face := range faces {
			plane, ok := geom.PlaneThrough(vertices[face[0]], vertices[face[1]], vertices[face[2]])
			if !ok {
				t.Fatalf("%s: face %d starts with collinear corners", name, i)
			}
			for _, index := range face[3:] {
				if d := plane.SignedDistance(vertices[index]); math.Abs(d) > 1e-9 {
					t.Errorf("%s: vertex %d is %g off face %d", name, index, d, i)
				}
			}
		}
	}
}

func TestCubeFacesPointOutward(t *testing.T) {
	vertices, faces := CubeTable(2)

	for i, face := range faces {
		points := make([]mgl64.Vec3, len(face))
		for j, index := range face {
			points[j] = vertices[index]
		}
		normal := geom.NewellNormal(points)
		if normal.Dot(geom.Centroid(points)) <= 0 {
			t.Errorf("face %d normal %v points inward", i, normal)
		}
	}
}
