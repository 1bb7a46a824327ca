package qhull

import (
	"github.com/akmonengine/polyhedra/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Subfacet is one edge of a facet's boundary: an unordered pair of points.
// On a finished hull every subfacet of a live facet is shared by exactly two
// live facets.
type Subfacet struct {
	A, B *Point
}

// Points returns both ends of the subfacet.
func (s Subfacet) Points() [2]*Point {
	return [2]*Point{s.A, s.B}
}

// Facet is an oriented triangular piece of the hull boundary.
//
// Corners are stored counter-clockwise as seen from outside, so the embedded
// plane's normal points away from the hull interior. neighbors[i] is the facet
// across the subfacet (vertices[i], vertices[i+1]).
type Facet struct {
	geom.Plane

	ID int

	vertices  [3]*Point
	neighbors [3]*Facet
	outside   []*Point
	removed   bool

	// coplanar holds points beyond the plane by no more than the tolerance.
	// They are not absorbed but are re-tested when nearby facets change.
	coplanar []*Point

	// visit tags the facet with the generation of the last horizon search
	// that found it visible.
	visit int
}

func newFacet(id int, a, b, c *Point) *Facet {
	// A zero plane is kept for zero-area triangles: every distance to it is 0,
	// so it is never visible and never collects outside points.
	plane, _ := geom.PlaneThrough(a.Coord, b.Coord, c.Coord)

	return &Facet{
		Plane:    plane,
		ID:       id,
		vertices: [3]*Point{a, b, c},
	}
}

// Vertices returns the three corners in counter-clockwise order seen from outside.
func (f *Facet) Vertices() [3]*Point {
	return f.vertices
}

// Subfacets returns the closed cycle of edges bounding the facet.
func (f *Facet) Subfacets() [3]Subfacet {
	return [3]Subfacet{
		{f.vertices[0], f.vertices[1]},
		{f.vertices[1], f.vertices[2]},
		{f.vertices[2], f.vertices[0]},
	}
}

// Points returns the distinct points touched by the facet's subfacets, in
// subfacet traversal order.
func (f *Facet) Points() []*Point {
	points := make([]*Point, 0, 3)
	for _, s := range f.Subfacets() {
		for _, p := range s.Points() {
			if !containsPoint(points, p) {
				points = append(points, p)
			}
		}
	}
	return points
}

// Neighbor returns the facet sharing subfacet i.
func (f *Facet) Neighbor(i int) *Facet {
	return f.neighbors[i]
}

// Outside returns a copy of the points still strictly beyond the facet's plane.
// Always empty for a finished hull.
func (f *Facet) Outside() []*Point {
	return append([]*Point(nil), f.outside...)
}

// Removed reports whether the facet was retired during construction.
func (f *Facet) Removed() bool {
	return f.removed
}

// Distance returns the signed distance from point to the facet's plane.
func (f *Facet) Distance(point mgl64.Vec3) float64 {
	return f.SignedDistance(point)
}

// Area returns the area of the triangle.
func (f *Facet) Area() float64 {
	a, b, c := f.vertices[0].Coord, f.vertices[1].Coord, f.vertices[2].Coord
	return b.Sub(a).Cross(c.Sub(a)).Len() / 2
}

// Centroid returns the average of the three corners.
func (f *Facet) Centroid() mgl64.Vec3 {
	return f.vertices[0].Coord.Add(f.vertices[1].Coord).Add(f.vertices[2].Coord).Mul(1.0 / 3.0)
}

// edgeTo returns the index of the subfacet shared with other, or -1.
func (f *Facet) edgeTo(other *Facet) int {
	for i, n := range f.neighbors {
		if n == other {
			return i
		}
	}
	return -1
}

// furthestOutside returns the outside point with the largest signed distance.
// The first one wins on ties.
func (f *Facet) furthestOutside() *Point {
	var best *Point
	bestDistance := 0.0

	for _, p := range f.outside {
		d := f.Distance(p.Coord)
		if best == nil || d > bestDistance {
			best = p
			bestDistance = d
		}
	}

	return best
}

func containsPoint(points []*Point, p *Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
