package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NormalSnapThreshold is used to clamp nearly-zero normal components to exactly zero.
const NormalSnapThreshold = 1e-8

// Plane is the oriented plane Normal · x = Offset.
// Normal is unit length, or zero for a degenerate plane.
type Plane struct {
	Normal mgl64.Vec3
	Offset float64
}

// PlaneThrough returns the plane through a, b and c, with the normal given by
// the right-hand rule on (b-a) × (c-a). ok is false when the three points are
// collinear (zero area), in which case the zero plane is returned.
func PlaneThrough(a, b, c mgl64.Vec3) (plane Plane, ok bool) {
	normal := b.Sub(a).Cross(c.Sub(a))
	length := normal.Len()
	if length == 0 || math.IsNaN(length) {
		return Plane{}, false
	}

	normal = normal.Mul(1.0 / length)
	return Plane{Normal: normal, Offset: normal.Dot(a)}, true
}

// SignedDistance returns the distance from point to the plane, positive on
// the side the normal points to.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Offset
}

// SnapNormal clamps nearly-zero components of a normal vector to exactly zero
// and renormalizes. A vector whose components all vanish yields the zero vector.
func SnapNormal(normal mgl64.Vec3) mgl64.Vec3 {
	for i := 0; i < 3; i++ {
		if math.Abs(normal[i]) < NormalSnapThreshold {
			normal[i] = 0
		}
	}

	length := normal.Len()
	if length < NormalSnapThreshold {
		return mgl64.Vec3{}
	}

	return normal.Mul(1.0 / length)
}

// TangentBasis returns two unit vectors orthogonal to normal and to each other,
// such that (t1, t2, normal) is right-handed.
func TangentBasis(normal mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var tangent1 mgl64.Vec3
	if math.Abs(normal.X()) > 0.9 {
		tangent1 = mgl64.Vec3{0, 1, 0}
	} else {
		tangent1 = mgl64.Vec3{1, 0, 0}
	}

	tangent1 = tangent1.Sub(normal.Mul(tangent1.Dot(normal))).Normalize()
	tangent2 := normal.Cross(tangent1).Normalize()

	return tangent1, tangent2
}

// NewellNormal returns the unit normal of a (possibly non-triangular) polygon
// using Newell's method. Zero is returned for polygons with no area.
func NewellNormal(points []mgl64.Vec3) mgl64.Vec3 {
	var normal mgl64.Vec3
	for i := range points {
		cur := points[i]
		next := points[(i+1)%len(points)]
		normal[0] += (cur.Y() - next.Y()) * (cur.Z() + next.Z())
		normal[1] += (cur.Z() - next.Z()) * (cur.X() + next.X())
		normal[2] += (cur.X() - next.X()) * (cur.Y() + next.Y())
	}

	length := normal.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return normal.Mul(1.0 / length)
}
