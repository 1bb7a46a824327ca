package polyhedra

import (
	"github.com/akmonengine/polyhedra/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// PositionProvider exposes the current position of each vertex.
// It is the single source of truth read by Polyhedron.Synchronize.
type PositionProvider interface {
	Position(index int) mgl64.Vec3
}

// Positions is a plain vertex table used as a provider.
type Positions []mgl64.Vec3

func (p Positions) Position(index int) mgl64.Vec3 {
	return p[index]
}

// PositionFunc adapts a function to PositionProvider.
type PositionFunc func(index int) mgl64.Vec3

func (f PositionFunc) Position(index int) mgl64.Vec3 {
	return f(index)
}

// TransformedPositions moves every position of Base by Transform.
type TransformedPositions struct {
	Base      PositionProvider
	Transform geom.Transform
}

func (t TransformedPositions) Position(index int) mgl64.Vec3 {
	return t.Transform.Apply(t.Base.Position(index))
}

// FacePolygons returns the corner coordinates of every face, read from provider.
func FacePolygons(faces [][]int, provider PositionProvider) [][]mgl64.Vec3 {
	polygons := make([][]mgl64.Vec3, len(faces))
	for i, face := range faces {
		points := make([]mgl64.Vec3, len(face))
		for j, index := range face {
			points[j] = provider.Position(index)
		}
		polygons[i] = points
	}
	return polygons
}
