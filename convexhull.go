package polyhedra

import (
	"github.com/akmonengine/polyhedra/geom"
	"github.com/akmonengine/polyhedra/qhull"
	"github.com/go-gl/mathgl/mgl64"
)

type extractOptions struct {
	mergeCoplanar bool
}

// ExtractOption configures ExtractFaces.
type ExtractOption func(*extractOptions)

// MergeCoplanar groups adjacent facets lying in one plane (within the hull
// tolerance) into a single polygonal face, ordered counter-clockwise around
// its normal.
func MergeCoplanar() ExtractOption {
	return func(o *extractOptions) {
		o.mergeCoplanar = true
	}
}

// ExtractFaces turns the live facets of a hull into a vertex table and a face
// list.
//
// By default every live facet becomes one face, in creation order. Its
// indices are the distinct points met while walking the facet's subfacets, in
// that order; a point gets its vertex index the first time any facet meets it.
func ExtractFaces(h *qhull.Hull, opts ...ExtractOption) ([]mgl64.Vec3, [][]int) {
	var o extractOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.mergeCoplanar {
		return extractMerged(h)
	}

	table := newVertexTable()
	facets := h.Facets()
	faces := make([][]int, 0, len(facets))

	for _, f := range facets {
		var face []int
		seen := make(map[*qhull.Point]bool, 3)
		for _, s := range f.Subfacets() {
			for _, p := range s.Points() {
				if !seen[p] {
					seen[p] = true
					face = append(face, table.index(p))
				}
			}
		}
		faces = append(faces, face)
	}

	return table.coords, faces
}

// extractMerged floods from each ungrouped facet, in creation order, across
// neighbors that face the same way and lie within tolerance of the seed plane.
// Every neighbor is tested against the seed, never against the last facet
// added, so a slowly curving surface cannot chain into one face.
func extractMerged(h *qhull.Hull) ([]mgl64.Vec3, [][]int) {
	facets := h.Facets()
	group := make(map[*qhull.Facet]int, len(facets))

	var groups [][]*qhull.Facet
	for _, seed := range facets {
		if _, ok := group[seed]; ok {
			continue
		}

		id := len(groups)
		group[seed] = id
		members := []*qhull.Facet{seed}

		for queue := []*qhull.Facet{seed}; len(queue) > 0; {
			f := queue[0]
			queue = queue[1:]

			for i := 0; i < 3; i++ {
				n := f.Neighbor(i)
				if _, ok := group[n]; ok || !coplanar(seed, n, h.Tolerance()) {
					continue
				}
				group[n] = id
				members = append(members, n)
				queue = append(queue, n)
			}
		}

		groups = append(groups, members)
	}

	table := newVertexTable()
	faces := make([][]int, 0, len(groups))

	for id, members := range groups {
		// Only subfacets on the group boundary contribute corners; points
		// inside a merged region are dropped.
		var points []*qhull.Point
		seen := make(map[*qhull.Point]bool)
		var normal mgl64.Vec3

		for _, f := range members {
			normal = normal.Add(f.Normal.Mul(f.Area()))
			for i, s := range f.Subfacets() {
				if group[f.Neighbor(i)] == id {
					continue
				}
				for _, p := range s.Points() {
					if !seen[p] {
						seen[p] = true
						points = append(points, p)
					}
				}
			}
		}

		coords := make([]mgl64.Vec3, len(points))
		for i, p := range points {
			coords[i] = p.Coord
		}

		face := make([]int, 0, len(points))
		for _, i := range geom.SortCyclic(coords, geom.SnapNormal(normal.Normalize())) {
			face = append(face, table.index(points[i]))
		}
		faces = append(faces, face)
	}

	return table.coords, faces
}

// coplanar reports whether every corner of f lies within tolerance of the
// seed plane and both face the same side.
func coplanar(seed, f *qhull.Facet, tolerance float64) bool {
	if seed.Normal.Dot(f.Normal) <= 0 {
		return false
	}
	for _, p := range f.Vertices() {
		d := seed.Distance(p.Coord)
		if d > tolerance || d < -tolerance {
			return false
		}
	}
	return true
}

// vertexTable assigns vertex indices to hull points on first sight.
type vertexTable struct {
	indices map[*qhull.Point]int
	coords  []mgl64.Vec3
}

func newVertexTable() *vertexTable {
	return &vertexTable{indices: make(map[*qhull.Point]int)}
}

func (t *vertexTable) index(p *qhull.Point) int {
	if i, ok := t.indices[p]; ok {
		return i
	}
	i := len(t.coords)
	t.indices[p] = i
	t.coords = append(t.coords, p.Coord)
	return i
}

// ConvexHull3D builds the convex hull of points and wraps it in a Polyhedron,
// one triangular face per hull facet.
func ConvexHull3D(points []mgl64.Vec3, tolerance float64, opts ...Option) (*Polyhedron, error) {
	return convexHull(points, tolerance, nil, opts)
}

// ConvexHull3DMerged is ConvexHull3D with coplanar facets merged into
// polygonal faces.
func ConvexHull3DMerged(points []mgl64.Vec3, tolerance float64, opts ...Option) (*Polyhedron, error) {
	return convexHull(points, tolerance, []ExtractOption{MergeCoplanar()}, opts)
}

func convexHull(points []mgl64.Vec3, tolerance float64, extract []ExtractOption, opts []Option) (*Polyhedron, error) {
	h, err := qhull.Build(points, qhull.WithTolerance(tolerance))
	if err != nil {
		return nil, err
	}

	vertices, faces := ExtractFaces(h, extract...)
	return NewPolyhedron(vertices, faces, opts...)
}
