package qhull

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Simplex holds the points of the initial tetrahedron.
// Size progression while it is grown: 2 points (line) → 3 points (triangle)
// → 4 points (tetrahedron).
type Simplex struct {
	Points [4]*Point
	Count  int
}

// Centroid returns the average of the simplex points. For a full tetrahedron
// it is strictly inside the hull for the whole build.
func (s *Simplex) Centroid() mgl64.Vec3 {
	var sum mgl64.Vec3
	for i := 0; i < s.Count; i++ {
		sum = sum.Add(s.Points[i].Coord)
	}
	return sum.Mul(1.0 / float64(s.Count))
}

func (s *Simplex) contains(p *Point) bool {
	for i := 0; i < s.Count; i++ {
		if s.Points[i] == p {
			return true
		}
	}
	return false
}

// initialSimplex picks 4 points spanning a tetrahedron whose every extent is
// larger than the tolerance.
//
// Algorithm:
//  1. Extreme points along ±x, ±y, ±z (support points of the cloud)
//  2. The farthest pair among them forms the first edge
//  3. The point farthest from that line closes the triangle
//  4. The point farthest from the triangle's plane, on either side, is the apex
//
// Each step failing the tolerance test yields a DegenerateInputError.
func initialSimplex(points []*Point, tolerance float64) (Simplex, error) {
	var simplex Simplex
	degenerate := func(reason DegenerateReason) error {
		return &DegenerateInputError{Reason: reason, Points: len(points), Tolerance: tolerance}
	}

	// Step 1: support points along each axis, first occurrence wins ties
	var extremes [6]*Point
	for i := 0; i < 6; i++ {
		extremes[i] = points[0]
	}
	for _, p := range points[1:] {
		for axis := 0; axis < 3; axis++ {
			if p.Coord[axis] < extremes[2*axis].Coord[axis] {
				extremes[2*axis] = p
			}
			if p.Coord[axis] > extremes[2*axis+1].Coord[axis] {
				extremes[2*axis+1] = p
			}
		}
	}

	// Step 2: farthest pair of extremes
	var a, b *Point
	maxDistance := -1.0
	for i := 0; i < len(extremes); i++ {
		for j := i + 1; j < len(extremes); j++ {
			d := extremes[i].Coord.Sub(extremes[j].Coord).LenSqr()
			if d > maxDistance {
				a, b = extremes[i], extremes[j]
				maxDistance = d
			}
		}
	}
	if math.Sqrt(maxDistance) <= tolerance {
		return simplex, degenerate(Coincident)
	}
	simplex.Points[0], simplex.Points[1] = a, b
	simplex.Count = 2

	// Step 3: farthest from the line ab
	direction := b.Coord.Sub(a.Coord).Normalize()
	var c *Point
	maxDistance = -1.0
	for _, p := range points {
		d := p.Coord.Sub(a.Coord).Cross(direction).Len()
		if d > maxDistance {
			c = p
			maxDistance = d
		}
	}
	if maxDistance <= tolerance {
		return simplex, degenerate(Collinear)
	}
	simplex.Points[2] = c
	simplex.Count = 3

	// Step 4: farthest from the plane abc
	normal := b.Coord.Sub(a.Coord).Cross(c.Coord.Sub(a.Coord)).Normalize()
	var d *Point
	maxDistance = -1.0
	for _, p := range points {
		dist := math.Abs(normal.Dot(p.Coord.Sub(a.Coord)))
		if dist > maxDistance {
			d = p
			maxDistance = dist
		}
	}
	if maxDistance <= tolerance {
		return simplex, degenerate(Coplanar)
	}
	simplex.Points[3] = d
	simplex.Count = 4

	return simplex, nil
}
