package geom

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// CompareVec3 compares vectors lexicographically (x, then y, then z).
func CompareVec3(a, b mgl64.Vec3) int {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Vec3Equal performs an exact equality check, no epsilon.
func Vec3Equal(a, b mgl64.Vec3) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// Centroid returns the average of points, or the origin for an empty set.
func Centroid(points []mgl64.Vec3) mgl64.Vec3 {
	if len(points) == 0 {
		return mgl64.Vec3{}
	}

	var sum mgl64.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

type angleKey struct {
	index    int
	angle    float64
	distance float64
}

// SortCyclic orders roughly coplanar points counter-clockwise around their
// centroid, as seen from the side normal points to. It returns the
// permutation to apply: the result holds indices into points.
// Ties in angle are broken by distance to the centroid, then input order.
func SortCyclic(points []mgl64.Vec3, normal mgl64.Vec3) []int {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	if len(points) < 3 || normal.LenSqr() == 0 {
		return order
	}

	center := Centroid(points)
	u, v := TangentBasis(normal.Normalize())

	keys := make([]angleKey, len(points))
	for i, p := range points {
		d := p.Sub(center)
		keys[i] = angleKey{
			index:    i,
			angle:    math.Atan2(d.Dot(v), d.Dot(u)),
			distance: d.LenSqr(),
		}
	}

	sort.SliceStable(keys, func(a, b int) bool {
		if keys[a].angle == keys[b].angle {
			return keys[a].distance < keys[b].distance
		}
		return keys[a].angle < keys[b].angle
	})

	for i, k := range keys {
		order[i] = k.index
	}
	return order
}
