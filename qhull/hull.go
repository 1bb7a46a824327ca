// Package qhull computes the convex hull of a 3D point cloud with the
// QuickHull algorithm.
//
// The hull is grown incrementally from an initial tetrahedron. Each facet
// keeps the set of points still strictly outside its plane; the furthest of
// them is absorbed by retiring every facet it can see and fanning new
// triangles from the horizon to it. When no facet has outside points left,
// the live facets form the hull.
//
// Retired facets are tombstoned, never erased: Hull.AllFacets returns every
// facet ever created and Hull.Facets the live boundary.
//
// A single tolerance decides when a point is "outside" a plane and when the
// input is too flat to have a hull. Points beyond a facet by less than the
// tolerance are kept in the facet's coplanar set: where two facets meet at a
// sharp edge such a point can lie far from the hull, and a later facet may
// leave it well outside. Coplanar sets are re-tested as facets change, and a
// final sweep absorbs any input point still beyond a live facet. Facets are never merged: coplanar regions
// are left as several triangles sharing subfacets, for callers to group.
//
// References:
//   - Barber, Dobkin, Huhdanpaa: "The Quickhull Algorithm for Convex Hulls" (1996)
package qhull

import (
	"fmt"
	"math"

	"github.com/akmonengine/polyhedra/geom"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultTolerance is the distance under which a point counts as lying on a plane.
	DefaultTolerance = 1e-5

	// machineEpsilon is the float64 unit roundoff.
	machineEpsilon = 2.220446049250313e-16
)

type options struct {
	tolerance float64
}

// Option configures a hull build.
type Option func(*options)

// WithTolerance sets the on-plane tolerance. It must be positive and finite.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.tolerance = tolerance
	}
}

// Hull is the state of one QuickHull build. It is owned by a single caller
// and is not safe for concurrent mutation; once Build returns it is only read.
type Hull struct {
	tolerance float64
	// epsilon bounds the rounding error of a signed distance. Facets seen by
	// the absorbed point by more than this are replaced, which keeps the
	// boundary convex.
	epsilon float64

	points   []*Point
	facets   []*Facet
	interior mgl64.Vec3
	// bounds is the input box grown by the tolerance.
	bounds geom.AABB

	// scratch for one absorption step
	generation int
	visible    []*Facet
	horizon    []horizonEdge
}

// horizonEdge is subfacet edge of a visible facet whose neighbor is not visible.
type horizonEdge struct {
	facet *Facet
	edge  int
}

// Build computes the convex hull of points.
//
// Algorithm overview:
//  1. Collapse exact duplicate coordinates into single points
//  2. Pick an initial tetrahedron (see initialSimplex)
//  3. Assign every other point to the first facet it is strictly outside of
//  4. While a live facet has outside points, absorb its furthest point
//  5. Sweep the input for points still beyond a live facet; absorb them and
//     repeat until none is left
//  6. Return the live facets
//
// Returns ErrInvalidTolerance, ErrNonFinite or a *DegenerateInputError on bad
// input; no partial hull is ever returned.
func Build(points []mgl64.Vec3, opts ...Option) (*Hull, error) {
	o := options{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	if !(o.tolerance > 0) || math.IsInf(o.tolerance, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTolerance, o.tolerance)
	}
	for i, p := range points {
		for axis := 0; axis < 3; axis++ {
			if math.IsNaN(p[axis]) || math.IsInf(p[axis], 0) {
				return nil, fmt.Errorf("%w: point %d is %v", ErrNonFinite, i, p)
			}
		}
	}

	h := &Hull{tolerance: o.tolerance}

	// Step 1: register points
	box := geom.NewAABB(points)
	h.bounds = box.Grow(h.tolerance)
	grid := newPointGrid(box, len(points))
	for i, p := range points {
		grid.insert(p, i)
	}
	h.points = grid.points

	if len(h.points) < 4 {
		return nil, &DegenerateInputError{Reason: TooFewPoints, Points: len(h.points), Tolerance: h.tolerance}
	}

	maxAbs := box.MaxAbs()
	h.epsilon = math.Min(h.tolerance, 3*machineEpsilon*(maxAbs.X()+maxAbs.Y()+maxAbs.Z()))

	// Step 2: initial tetrahedron
	simplex, err := initialSimplex(h.points, h.tolerance)
	if err != nil {
		return nil, err
	}
	initial := h.buildSimplexFacets(&simplex)

	// Step 3: outside sets
	candidates := make([]*Point, 0, len(h.points)-4)
	for _, p := range h.points {
		if !simplex.contains(p) {
			candidates = append(candidates, p)
		}
	}
	h.distribute(candidates, initial)

	// Step 4
	h.absorbOutside()

	// Step 5: every sweep that finds a stray makes at least one new vertex.
	for round := 0; round < len(h.points) && h.collectStrays(); round++ {
		h.absorbOutside()
	}

	h.visible = nil
	h.horizon = nil

	return h, nil
}

// buildSimplexFacets creates the 4 faces of the tetrahedron, each oriented so
// its normal points away from the simplex centroid.
func (h *Hull) buildSimplexFacets(simplex *Simplex) []*Facet {
	h.interior = simplex.Centroid()
	p0, p1, p2, p3 := simplex.Points[0], simplex.Points[1], simplex.Points[2], simplex.Points[3]

	faces := []*Facet{
		h.createFacetOutward(p0, p1, p2), // Face ABC, opposite point is D
		h.createFacetOutward(p0, p2, p3), // Face ACD, opposite point is B
		h.createFacetOutward(p0, p3, p1), // Face ADB, opposite point is C
		h.createFacetOutward(p1, p3, p2), // Face BDC, opposite point is A
	}
	linkFacets(faces)

	return faces
}

// createFacetOutward creates a facet whose normal points away from the hull
// interior, swapping two corners when the given order faces inward.
func (h *Hull) createFacetOutward(a, b, c *Point) *Facet {
	normal := b.Coord.Sub(a.Coord).Cross(c.Coord.Sub(a.Coord))
	if normal.Dot(h.interior.Sub(a.Coord)) > 0 {
		b, c = c, b
	}
	return h.newFacet(a, b, c)
}

func (h *Hull) newFacet(a, b, c *Point) *Facet {
	f := newFacet(len(h.facets), a, b, c)
	h.facets = append(h.facets, f)
	return f
}

// linkFacets connects facets sharing a subfacet. Facets are consistently
// oriented, so a shared edge appears once in each direction.
func linkFacets(facets []*Facet) {
	edges := make(map[[2]int]*Facet, len(facets)*3)
	for _, f := range facets {
		for i := 0; i < 3; i++ {
			edges[[2]int{f.vertices[i].ID, f.vertices[(i+1)%3].ID}] = f
		}
	}

	for _, f := range facets {
		for i := 0; i < 3; i++ {
			twin := [2]int{f.vertices[(i+1)%3].ID, f.vertices[i].ID}
			if other, ok := edges[twin]; ok {
				f.neighbors[i] = other
			}
		}
	}
}

// distribute gives each point to the first facet it is strictly outside of.
// A point outside none of them joins the coplanar set of the facet it is
// furthest beyond; a point beyond none of them is inside and is dropped.
func (h *Hull) distribute(points []*Point, facets []*Facet) {
	for _, p := range points {
		var nearest *Facet
		nearestDistance := 0.0

		outside := false
		for _, f := range facets {
			d := f.Distance(p.Coord)
			if d > h.tolerance {
				f.outside = append(f.outside, p)
				outside = true
				break
			}
			if d > nearestDistance {
				nearest, nearestDistance = f, d
			}
		}

		if !outside && nearest != nil {
			nearest.coplanar = append(nearest.coplanar, p)
		}
	}
}

// promoteCoplanar moves the coplanar points of f that are strictly outside one
// of facets into that facet's outside set.
func (h *Hull) promoteCoplanar(f *Facet, facets []*Facet) {
	kept := f.coplanar[:0]
	for _, p := range f.coplanar {
		if nf := h.firstOutside(p, facets); nf != nil {
			nf.outside = append(nf.outside, p)
		} else {
			kept = append(kept, p)
		}
	}
	f.coplanar = kept
}

func (h *Hull) firstOutside(p *Point, facets []*Facet) *Facet {
	for _, f := range facets {
		if f.Distance(p.Coord) > h.tolerance {
			return f
		}
	}
	return nil
}

// absorbOutside absorbs points until every outside set is empty.
// Only facets created after the cursor gain outside points while it runs, so a
// forward cursor suffices.
func (h *Hull) absorbOutside() {
	for cursor := 0; cursor < len(h.facets); {
		f := h.facets[cursor]
		if f.removed || len(f.outside) == 0 {
			cursor++
			continue
		}
		h.addPoint(f, f.furthestOutside())
	}
}

// collectStrays puts every input point strictly outside a live facet into that
// facet's outside set. It reports whether any was found.
func (h *Hull) collectStrays() bool {
	live := h.Facets()

	vertex := make([]bool, len(h.points))
	for _, f := range live {
		for _, p := range f.vertices {
			vertex[p.ID] = true
		}
	}

	found := false
	for _, p := range h.points {
		if vertex[p.ID] {
			continue
		}
		if f := h.firstOutside(p, live); f != nil {
			f.outside = append(f.outside, p)
			found = true
		}
	}
	return found
}

// addPoint absorbs eye, the furthest outside point of f.
//
// Algorithm:
//  1. Flood from f across subfacets to find every facet eye can see
//  2. The subfacets between visible and hidden facets form the horizon
//  3. Retire the visible facets
//  4. Fan one new triangle from each horizon subfacet to eye
//  5. Hand the retired facets' outside and coplanar points to the new facets
//  6. Re-test the coplanar points of the facets across the horizon
func (h *Hull) addPoint(f *Facet, eye *Point) {
	h.generation++
	h.visible = h.visible[:0]
	h.horizon = h.horizon[:0]

	// Steps 1-2
	h.computeHorizon(eye, f, 0)

	// Step 3
	var orphans []*Point
	for _, v := range h.visible {
		v.removed = true
		for _, p := range v.outside {
			if p != eye {
				orphans = append(orphans, p)
			}
		}
		orphans = append(orphans, v.coplanar...)
		v.outside = nil
		v.coplanar = nil
	}

	// Step 4: corners keep the retiring facet's edge direction, so the new
	// facet is oriented like its predecessor.
	created := make([]*Facet, 0, len(h.horizon))
	for _, e := range h.horizon {
		a := e.facet.vertices[e.edge]
		b := e.facet.vertices[(e.edge+1)%3]
		across := e.facet.neighbors[e.edge]

		nf := h.newFacet(a, b, eye)
		nf.neighbors[0] = across
		across.neighbors[across.edgeTo(e.facet)] = nf

		created = append(created, nf)
	}
	linkFacets(created)

	// Step 5
	h.distribute(orphans, created)

	// Step 6
	for _, e := range h.horizon {
		h.promoteCoplanar(e.facet.neighbors[e.edge], created)
	}
}

// computeHorizon marks f visible and walks its neighbors, starting with the
// subfacet after the one it was entered through. The walk yields the horizon
// as a closed cycle, in order.
func (h *Hull) computeHorizon(eye *Point, f *Facet, start int) {
	f.visit = h.generation
	h.visible = append(h.visible, f)

	for k := 0; k < 3; k++ {
		i := (start + k) % 3
		n := f.neighbors[i]
		if n.visit == h.generation {
			continue
		}

		if n.Distance(eye.Coord) > h.epsilon {
			h.computeHorizon(eye, n, (n.edgeTo(f)+1)%3)
		} else {
			h.horizon = append(h.horizon, horizonEdge{facet: f, edge: i})
		}
	}
}

// Tolerance returns the on-plane tolerance used by the build.
func (h *Hull) Tolerance() float64 {
	return h.tolerance
}

// Points returns every distinct input point, in first-seen order.
func (h *Hull) Points() []*Point {
	return append([]*Point(nil), h.points...)
}

// AllFacets returns every facet ever created, live or retired, in creation order.
func (h *Hull) AllFacets() []*Facet {
	return append([]*Facet(nil), h.facets...)
}

// Facets returns the live facets forming the hull boundary, in creation order.
func (h *Hull) Facets() []*Facet {
	live := make([]*Facet, 0, len(h.facets))
	for _, f := range h.facets {
		if !f.removed {
			live = append(live, f)
		}
	}
	return live
}

// Vertices returns the points referenced by live facets, in first-seen order.
func (h *Hull) Vertices() []*Point {
	seen := make([]bool, len(h.points))
	var vertices []*Point

	for _, f := range h.facets {
		if f.removed {
			continue
		}
		for _, p := range f.vertices {
			if !seen[p.ID] {
				seen[p.ID] = true
				vertices = append(vertices, p)
			}
		}
	}

	return vertices
}

// Centroid returns a point strictly inside the hull (the centroid of the
// initial tetrahedron).
func (h *Hull) Centroid() mgl64.Vec3 {
	return h.interior
}

// Contains reports whether point lies inside the hull or within tolerance of
// its boundary.
func (h *Hull) Contains(point mgl64.Vec3) bool {
	if !h.bounds.ContainsPoint(point) {
		return false
	}
	for _, f := range h.facets {
		if !f.removed && f.Distance(point) > h.tolerance {
			return false
		}
	}
	return true
}

// Volume returns the volume enclosed by the hull.
func (h *Hull) Volume() float64 {
	volume := 0.0
	for _, f := range h.facets {
		if f.removed {
			continue
		}
		// Tetrahedron spanned by the facet and the interior point.
		a := f.vertices[0].Coord.Sub(h.interior)
		b := f.vertices[1].Coord.Sub(h.interior)
		c := f.vertices[2].Coord.Sub(h.interior)
		volume += a.Dot(b.Cross(c)) / 6
	}
	return volume
}

// SurfaceArea returns the total area of the live facets.
func (h *Hull) SurfaceArea() float64 {
	area := 0.0
	for _, f := range h.facets {
		if !f.removed {
			area += f.Area()
		}
	}
	return area
}
