package geom

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position and orientation in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// Apply rotates point about the origin, then translates it.
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(point).Add(t.Position)
}

// Rotate returns a copy of the transform with an extra rotation of angle
// radians about axis, applied after the current one.
func (t Transform) Rotate(angle float64, axis mgl64.Vec3) Transform {
	t.Rotation = mgl64.QuatRotate(angle, axis.Normalize()).Mul(t.Rotation).Normalize()
	return t
}
