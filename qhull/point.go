package qhull

import (
	"math"

	"github.com/akmonengine/polyhedra/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Point is a registered input coordinate.
// Identity is the arena slot, not the coordinate: two *Point are the same
// point only if they are the same pointer (equivalently, have the same ID).
type Point struct {
	ID    int // arena index, assigned on first insertion
	Index int // first input index that produced this point
	Coord mgl64.Vec3
}

// cellKey - integer coordinates of a grid cell
type cellKey struct {
	X, Y, Z int
}

// pointGrid is a uniform spatial hash used to collapse duplicate input
// coordinates into a single Point. Equality inside a cell is exact.
type pointGrid struct {
	cellSize float64
	cells    [][]int
	cellMask int
	points   []*Point
}

// newPointGrid sizes the grid for n points spread over box.
func newPointGrid(box geom.AABB, n int) *pointGrid {
	numCells := nextPowerOfTwo(n)

	// Aim for about one point per cell along the box diagonal.
	cellSize := box.Diagonal() / math.Max(1, math.Cbrt(float64(numCells)))
	if cellSize <= 0 || math.IsInf(cellSize, 0) || math.IsNaN(cellSize) {
		cellSize = 1
	}

	return &pointGrid{
		cellSize: cellSize,
		cells:    make([][]int, numCells),
		cellMask: numCells - 1,
		points:   make([]*Point, 0, n),
	}
}

// nextPowerOfTwo - Rounds up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// insert returns the Point registered for coord, creating it when the
// coordinate was never seen. created reports whether a new Point was made.
func (g *pointGrid) insert(coord mgl64.Vec3, inputIndex int) (p *Point, created bool) {
	cellIdx := g.hashCell(g.worldToCell(coord))

	for _, id := range g.cells[cellIdx] {
		if geom.Vec3Equal(g.points[id].Coord, coord) {
			return g.points[id], false
		}
	}

	p = &Point{ID: len(g.points), Index: inputIndex, Coord: coord}
	g.points = append(g.points, p)
	g.cells[cellIdx] = append(g.cells[cellIdx], p.ID)

	return p, true
}

// worldToCell - Converts a world position into cell coordinates
func (g *pointGrid) worldToCell(pos mgl64.Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

// hashCell - Hashes a cell to an index in the cell table
func (g *pointGrid) hashCell(key cellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}
