// Package polyhedra builds polyhedral meshes (vertices, edges, planar faces)
// from explicit tables or from the convex hull of a point cloud, and keeps the
// face geometry in step with moving vertices.
//
// Topology is fixed at construction. Only vertex positions change afterwards,
// and only through Polyhedron.Synchronize, which the caller runs once per
// frame or position change.
package polyhedra

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a vertex of the mesh graph. Its pointer stays valid for the
// lifetime of the Polyhedron; Synchronize only rewrites Position.
type Vertex struct {
	Index    int
	Position mgl64.Vec3
}

// Graph is the vertex/edge view of a polyhedron, as handed to a display layer.
type Graph struct {
	Vertices []*Vertex
	// Edges keeps one entry per cyclic pair of every face, shared edges included.
	Edges  [][2]int
	Config Config
}

type options struct {
	facesConfig Config
	graphConfig Config
	renderer    PolygonRenderer
}

// Option configures a Polyhedron.
type Option func(*options)

// WithFacesConfig overrides keys of the face style.
func WithFacesConfig(config Config) Option {
	return func(o *options) {
		o.facesConfig = o.facesConfig.Merge(config)
	}
}

// WithGraphConfig overrides keys of the graph style.
func WithGraphConfig(config Config) Option {
	return func(o *options) {
		o.graphConfig = o.graphConfig.Merge(config)
	}
}

// WithRenderer sets the renderer producing face polygons. Defaults to PlainRenderer.
func WithRenderer(renderer PolygonRenderer) Option {
	return func(o *options) {
		o.renderer = renderer
	}
}

// Polyhedron is a mesh of planar faces over an indexed vertex table.
type Polyhedron struct {
	// mu guards vertex positions and polygons during a synchronization pass.
	mu sync.Mutex

	faces [][]int
	edges [][2]int
	// referenced lists, ascending, every vertex used by at least one face.
	referenced []int

	vertices []*Vertex
	polygons []*Polygon
	graph    *Graph

	facesConfig Config
	renderer    PolygonRenderer
}

// NewPolyhedron builds a polyhedron from a vertex table and a list of faces,
// each face being a cycle of vertex indices.
//
// Faces are validated one by one before any geometry is built: a face with
// fewer than 3 indices yields a *DegenerateFaceError and an index outside
// [0, len(vertexCoords)) an *InvalidFaceIndexError.
func NewPolyhedron(vertexCoords []mgl64.Vec3, faces [][]int, opts ...Option) (*Polyhedron, error) {
	o := options{
		facesConfig: DefaultFacesConfig(),
		graphConfig: DefaultGraphConfig(),
		renderer:    PlainRenderer{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	for i, face := range faces {
		if len(face) < 3 {
			return nil, &DegenerateFaceError{Face: i, Len: len(face)}
		}
		for _, index := range face {
			if index < 0 || index >= len(vertexCoords) {
				return nil, &InvalidFaceIndexError{Face: i, Index: index, Vertices: len(vertexCoords)}
			}
		}
	}

	p := &Polyhedron{
		faces:       make([][]int, len(faces)),
		facesConfig: o.facesConfig,
		renderer:    o.renderer,
	}

	used := make([]bool, len(vertexCoords))
	for i, face := range faces {
		p.faces[i] = append([]int(nil), face...)
		for _, index := range face {
			used[index] = true
		}
	}
	for index, ok := range used {
		if ok {
			p.referenced = append(p.referenced, index)
		}
	}

	p.edges = Edges(p.faces)

	p.vertices = make([]*Vertex, len(vertexCoords))
	for i, c := range vertexCoords {
		p.vertices[i] = &Vertex{Index: i, Position: c}
	}

	p.graph = &Graph{
		Vertices: p.vertices,
		Edges:    p.edges,
		Config:   o.graphConfig,
	}

	p.polygons = make([]*Polygon, len(p.faces))
	for i, points := range FacePolygons(p.faces, Positions(vertexCoords)) {
		p.polygons[i] = &Polygon{Face: i}
		p.renderer.Render(p.polygons[i], points, p.facesConfig)
	}

	return p, nil
}

// Edges returns the cyclic pairs (v[i], v[i+1 mod n]) of every face, in face
// order. Edges shared by two faces appear twice.
func Edges(faces [][]int) [][2]int {
	var edges [][2]int
	for _, face := range faces {
		for i := range face {
			edges = append(edges, [2]int{face[i], face[(i+1)%len(face)]})
		}
	}
	return edges
}

// UniqueEdges returns every undirected edge once, as (low, high), in first-seen order.
func UniqueEdges(faces [][]int) [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, e := range Edges(faces) {
		key := [2]int{min(e[0], e[1]), max(e[0], e[1])}
		if !seen[key] {
			seen[key] = true
			edges = append(edges, key)
		}
	}
	return edges
}

// Synchronize reads the position of every vertex used by a face from provider,
// stores it in the graph and re-renders every face polygon.
//
// Vertex and polygon pointers are updated in place, so references held by the
// caller stay valid. Running it twice with unchanged positions yields the same
// geometry. The polyhedron itself may be passed as provider.
func (p *Polyhedron) Synchronize(provider PositionProvider) []*Polygon {
	// Read before locking: provider may be p.
	positions := make([]mgl64.Vec3, len(p.vertices))
	for _, index := range p.referenced {
		positions[index] = provider.Position(index)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, index := range p.referenced {
		p.vertices[index].Position = positions[index]
	}

	points := make([]mgl64.Vec3, 0, 8)
	for i, face := range p.faces {
		points = points[:0]
		for _, index := range face {
			points = append(points, positions[index])
		}
		p.renderer.Render(p.polygons[i], points, p.facesConfig)
	}

	return append([]*Polygon(nil), p.polygons...)
}

// Position returns the current position of vertex index.
func (p *Polyhedron) Position(index int) mgl64.Vec3 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.vertices[index].Position
}

// Vertices returns a copy of the current vertex positions.
func (p *Polyhedron) Vertices() []mgl64.Vec3 {
	p.mu.Lock()
	defer p.mu.Unlock()

	positions := make([]mgl64.Vec3, len(p.vertices))
	for i, v := range p.vertices {
		positions[i] = v.Position
	}
	return positions
}

// Vertex returns the graph vertex at index.
func (p *Polyhedron) Vertex(index int) *Vertex {
	return p.vertices[index]
}

// NumVertices returns the size of the vertex table.
func (p *Polyhedron) NumVertices() int {
	return len(p.vertices)
}

// Faces returns a copy of the face list.
func (p *Polyhedron) Faces() [][]int {
	faces := make([][]int, len(p.faces))
	for i := range p.faces {
		faces[i] = p.Face(i)
	}
	return faces
}

// Face returns a copy of face i.
func (p *Polyhedron) Face(i int) []int {
	return append([]int(nil), p.faces[i]...)
}

// Edges returns the display edges, duplicates kept.
func (p *Polyhedron) Edges() [][2]int {
	return append([][2]int(nil), p.edges...)
}

// UniqueEdges returns each undirected edge once.
func (p *Polyhedron) UniqueEdges() [][2]int {
	return UniqueEdges(p.faces)
}

// Polygons returns the face polygons, one per face in face order.
func (p *Polyhedron) Polygons() []*Polygon {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*Polygon(nil), p.polygons...)
}

// Graph returns the vertex/edge graph.
func (p *Polyhedron) Graph() *Graph {
	return p.graph
}

// FacesConfig returns the merged face style.
func (p *Polyhedron) FacesConfig() Config {
	return p.facesConfig.Clone()
}

// GraphConfig returns the merged graph style.
func (p *Polyhedron) GraphConfig() Config {
	return p.graph.Config.Clone()
}
