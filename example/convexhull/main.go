package main

import (
	"fmt"

	"github.com/akmonengine/polyhedra"
	"github.com/akmonengine/polyhedra/geom"
	"github.com/akmonengine/polyhedra/qhull"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	points := []mgl64.Vec3{
		{1.93192757, 0.44134585, -1.52407061},
		{-0.93302521, 1.23206983, 0.64117067},
		{-0.44350918, -0.61043677, 0.21723705},
		{-0.42640268, -1.05260843, 1.61266094},
		{-1.84449637, 0.91238739, -1.85172623},
		{1.72068132, -0.11880457, 0.51881751},
		{0.41904805, 0.44938012, -1.86440686},
		{0.83864666, 1.66653337, 1.88960123},
		{0.22240514, -0.80986286, 1.34249326},
		{-1.29585759, 1.01516189, 0.46187522},
		{1.7776499, -1.59550796, -1.70240747},
		{0.80065226, -0.12530398, 1.70063977},
		{1.28960948, -1.44158255, 1.39938582},
		{-0.93538943, 1.33617705, -0.24852643},
		{-1.54868271, 1.7444399, -0.46170734},
	}

	hull, err := polyhedra.ConvexHull3D(points, qhull.DefaultTolerance,
		polyhedra.WithFacesConfig(polyhedra.Config{"stroke_opacity": 0}),
		polyhedra.WithGraphConfig(polyhedra.Config{
			"vertex_type": "dot3d",
			"edge_config": polyhedra.Config{
				"stroke_color":   "#58c4dd",
				"stroke_width":   2,
				"stroke_opacity": 0.05,
			},
		}),
	)
	if err != nil {
		fmt.Printf("convex hull failed: %v\n", err)
		return
	}

	fmt.Printf("%d of %d points on the hull\n", hull.NumVertices(), len(points))
	for i, v := range hull.Vertices() {
		fmt.Printf("  v%-2d %v\n", i, v)
	}
	fmt.Printf("%d faces, %d edges\n", len(hull.Faces()), len(hull.UniqueEdges()))
	for i, face := range hull.Faces() {
		fmt.Printf("  f%-2d %v\n", i, face)
	}

	// Spin the hull a quarter turn and re-derive its faces.
	mover := polyhedra.TransformedPositions{
		Base:      polyhedra.Positions(hull.Vertices()),
		Transform: geom.NewTransform().Rotate(mgl64.DegToRad(90), mgl64.Vec3{0, 0, 1}),
	}
	polygons := hull.Synchronize(mover)
	fmt.Printf("after a quarter turn, face 0 is %v\n", polygons[0].Points)

	// A degenerate input is rejected.
	_, err = polyhedra.ConvexHull3D([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, qhull.DefaultTolerance)
	fmt.Printf("coplanar square: %v\n", err)
}
