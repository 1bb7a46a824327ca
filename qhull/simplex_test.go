package qhull

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func toPoints(coords []mgl64.Vec3) []*Point {
	points := make([]*Point, len(coords))
	for i, c := range coords {
		points[i] = &Point{ID: i, Index: i, Coord: c}
	}
	return points
}

func TestInitialSimplex(t *testing.T) {
	points := toPoints(append(unitCube(), mgl64.Vec3{0.5, 0.5, 0.5}))

	simplex, err := initialSimplex(points, DefaultTolerance)
	if err != nil {
		t.Fatalf("initialSimplex() error = %v", err)
	}
	if simplex.Count != 4 {
		t.Fatalf("Count = %d, want 4", simplex.Count)
	}

	seen := make(map[*Point]bool)
	for _, p := range simplex.Points {
		if seen[p] {
			t.Errorf("point %v used twice", p.Coord)
		}
		seen[p] = true
		if p.Index == 8 {
			t.Error("interior point chosen for the simplex")
		}
	}

	a, b, c, d := simplex.Points[0].Coord, simplex.Points[1].Coord, simplex.Points[2].Coord, simplex.Points[3].Coord
	volume := math.Abs(b.Sub(a).Cross(c.Sub(a)).Dot(d.Sub(a))) / 6
	if volume < 0.1 {
		t.Errorf("simplex volume = %v, want a well spread tetrahedron", volume)
	}

	centroid := simplex.Centroid()
	for i := 0; i < 3; i++ {
		if centroid[i] <= 0 || centroid[i] >= 1 {
			t.Errorf("centroid %v is not inside the cube", centroid)
		}
	}
}

func TestInitialSimplexFirstPairIsFarthest(t *testing.T) {
	coords := []mgl64.Vec3{{0, 0, 0}, {10, 0, 0}, {1, 1, 0}, {1, 0, 1}}
	simplex, err := initialSimplex(toPoints(coords), DefaultTolerance)
	if err != nil {
		t.Fatalf("initialSimplex() error = %v", err)
	}

	a, b := simplex.Points[0].Coord, simplex.Points[1].Coord
	if d := a.Sub(b).Len(); math.Abs(d-10) > 1e-12 {
		t.Errorf("first edge length = %v, want 10", d)
	}
}
