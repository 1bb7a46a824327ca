package polyhedra

import "github.com/go-gl/mathgl/mgl64"

// Polygon is the displayable geometry of one face.
type Polygon struct {
	Face   int
	Points []mgl64.Vec3
	Style  Config
}

// PolygonRenderer turns the corner points of a face into a styled polygon.
// Render writes into dst, which is reused across synchronizations.
type PolygonRenderer interface {
	Render(dst *Polygon, points []mgl64.Vec3, style Config)
}

// PlainRenderer copies points and style as they are.
type PlainRenderer struct{}

func (PlainRenderer) Render(dst *Polygon, points []mgl64.Vec3, style Config) {
	dst.Points = append(dst.Points[:0], points...)
	dst.Style = style
}
