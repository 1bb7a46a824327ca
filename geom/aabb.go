package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB returns the smallest box containing every point.
// An empty point set yields the zero box.
func NewAABB(points []mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(p)
	}

	return box
}

// Extend returns a copy of the box grown to contain point.
func (a AABB) Extend(point mgl64.Vec3) AABB {
	for i := 0; i < 3; i++ {
		a.Min[i] = math.Min(a.Min[i], point[i])
		a.Max[i] = math.Max(a.Max[i], point[i])
	}
	return a
}

// Grow returns a copy of the box pushed out by margin on every side.
func (a AABB) Grow(margin float64) AABB {
	offset := mgl64.Vec3{margin, margin, margin}
	return AABB{Min: a.Min.Sub(offset), Max: a.Max.Add(offset)}
}

// ContainsPoint reports whether point lies inside the box, faces included.
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Center returns the midpoint of the box
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Diagonal returns the length of the box diagonal
func (a AABB) Diagonal() float64 {
	return a.Size().Len()
}

// MaxAbs returns, per axis, the largest absolute coordinate found in the box.
// Used to scale rounding-error bounds to the magnitude of the input.
func (a AABB) MaxAbs() mgl64.Vec3 {
	return mgl64.Vec3{
		math.Max(math.Abs(a.Min.X()), math.Abs(a.Max.X())),
		math.Max(math.Abs(a.Min.Y()), math.Abs(a.Max.Y())),
		math.Max(math.Abs(a.Min.Z()), math.Abs(a.Max.Z())),
	}
}
