// Package render draws polyhedra to raster images.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective pinhole camera looking from Eye at Target.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FovY   float64 // vertical field of view, radians
	Near   float64
	Far    float64
}

// NewCamera returns a camera on the sphere of the given radius around the
// origin, at polar angle phi from +z and azimuth theta from +x.
func NewCamera(radius, phi, theta float64) Camera {
	return Camera{
		Eye: mgl64.Vec3{
			radius * math.Sin(phi) * math.Cos(theta),
			radius * math.Sin(phi) * math.Sin(theta),
			radius * math.Cos(phi),
		},
		Up:   mgl64.Vec3{0, 0, 1},
		FovY: mgl64.DegToRad(45),
		Near: 0.1,
		Far:  100,
	}
}

// View returns the world to camera matrix.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective matrix for a viewport of the given aspect ratio.
func (c Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Depth returns the distance of point in front of the camera, along its view axis.
func (c Camera) Depth(point mgl64.Vec3) float64 {
	return -c.View().Mul4x1(point.Vec4(1)).Z()
}

// Project maps point to pixel coordinates in a width x height image, y pointing
// down. ok is false for points not in front of the near plane.
func (c Camera) Project(point mgl64.Vec3, width, height int) (x, y float64, ok bool) {
	if c.Depth(point) < c.Near {
		return 0, 0, false
	}

	projection := c.Projection(float64(width) / float64(height))
	win := mgl64.Project(point, c.View(), projection, 0, 0, width, height)

	return win.X(), float64(height) - win.Y(), true
}
