// polyview spins a polyhedron in a window.
//
// Every frame the vertices are rotated by a point mover and the faces are
// re-derived from the moved positions with Polyhedron.Synchronize.
//
// Drag with the left mouse button to turn the camera, press space to pause.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"sort"

	"github.com/akmonengine/polyhedra"
	"github.com/akmonengine/polyhedra/geom"
	"github.com/akmonengine/polyhedra/meshio"
	"github.com/akmonengine/polyhedra/render"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

var (
	solid     = flag.String("solid", "dodecahedron", "Platonic solid to show: tetrahedron, octahedron, icosahedron, dodecahedron or cube")
	points    = flag.String("points", "", "Show the convex hull of this point file instead of a solid")
	merge     = flag.Bool("merge", true, "Merge coplanar hull facets into polygonal faces")
	tolerance = flag.Float64("tolerance", 1e-5, "Hull tolerance")
	speed     = flag.Float64("speed", 0.01, "Rotation speed in radians per frame")
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

type Game struct {
	poly   *polyhedra.Polyhedron
	mover  polyhedra.TransformedPositions
	camera render.Camera
	radius float64

	paused       bool
	phi, theta   float64
	isDragging   bool
	lastX, lastY int
}

func NewGame(p *polyhedra.Polyhedron) *Game {
	radius := 0.0
	for _, v := range p.Vertices() {
		radius = math.Max(radius, v.Len())
	}

	g := &Game{
		poly: p,
		mover: polyhedra.TransformedPositions{
			Base:      polyhedra.Positions(p.Vertices()),
			Transform: geom.NewTransform(),
		},
		radius: 4 * math.Max(radius, 1e-3),
		phi:    mgl64.DegToRad(75),
		theta:  mgl64.DegToRad(30),
	}
	g.camera = render.NewCamera(g.radius, g.phi, g.theta)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if !g.paused {
		g.mover.Transform = g.mover.Transform.Rotate(*speed, mgl64.Vec3{0.3, 0.5, 1})
		g.poly.Synchronize(g.mover)
	}

	// Mouse camera control
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.isDragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.isDragging {
		x, y := ebiten.CursorPosition()
		g.theta -= float64(x-g.lastX) / 200.0
		g.phi = mgl64.Clamp(g.phi-float64(y-g.lastY)/200.0, 0.05, math.Pi-0.05)
		g.lastX, g.lastY = x, y

		camera := render.NewCamera(g.radius, g.phi, g.theta)
		g.camera.Eye = camera.Eye
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.isDragging = false
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	polygons := g.poly.Polygons()
	sort.SliceStable(polygons, func(i, j int) bool {
		return g.camera.Depth(geom.Centroid(polygons[i].Points)) > g.camera.Depth(geom.Centroid(polygons[j].Points))
	})
	for _, p := range polygons {
		g.drawPolygon(screen, p)
	}

	graph := g.poly.Graph()
	vertexColor, err := render.ParseColor(graph.Config.String("vertex_color", render.DefaultVertexColor))
	if err != nil {
		vertexColor = color.RGBA{255, 255, 255, 255}
	}
	for _, v := range graph.Vertices {
		if x, y, ok := g.camera.Project(v.Position, screenWidth, screenHeight); ok {
			vector.DrawFilledCircle(screen, float32(x), float32(y), 3, vertexColor, true)
		}
	}

	status := "space: pause"
	if g.paused {
		status = "space: resume"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f\n%d faces\n%s", ebiten.ActualFPS(), len(polygons), status))
}

func (g *Game) drawPolygon(screen *ebiten.Image, p *polyhedra.Polygon) {
	xp := make([]float32, 0, len(p.Points))
	yp := make([]float32, 0, len(p.Points))
	for _, point := range p.Points {
		x, y, ok := g.camera.Project(point, screenWidth, screenHeight)
		if !ok {
			return
		}
		xp = append(xp, float32(x))
		yp = append(yp, float32(y))
	}

	fill, err := render.ParseColor(p.Style.String("fill_color", render.DefaultFillColor))
	if err != nil {
		return
	}
	alpha := float32(p.Style.Float("fill_opacity", 1))
	brightness := float32(1)
	if p.Style.Bool("shade_in_3d", false) {
		normal := geom.NewellNormal(p.Points)
		ray := g.camera.Eye.Sub(geom.Centroid(p.Points)).Normalize()
		brightness = float32(0.4 + 0.6*math.Abs(normal.Dot(ray)))
	}

	// Fan triangulation, faces are convex.
	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}
	vertices := make([]ebiten.Vertex, len(xp))
	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(fill.R) / 255 * brightness * alpha,
			ColorG: float32(fill.G) / 255 * brightness * alpha,
			ColorB: float32(fill.B) / 255 * brightness * alpha,
			ColorA: alpha,
		}
	}
	screen.DrawTriangles(vertices, indices, whiteSub, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if width := p.Style.Float("stroke_width", 0); width > 0 {
		stroke, err := render.ParseColor(p.Style.String("stroke_color", render.DefaultStrokeColor))
		if err != nil {
			return
		}
		for i := range xp {
			j := (i + 1) % len(xp)
			vector.StrokeLine(screen, xp[i], yp[i], xp[j], yp[j], float32(width), stroke, true)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func load() (*polyhedra.Polyhedron, error) {
	style := polyhedra.WithFacesConfig(polyhedra.Config{"stroke_width": 1.0})

	if *points != "" {
		f, err := os.Open(*points)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		cloud, err := meshio.ReadPoints(f)
		if err != nil {
			return nil, err
		}
		if *merge {
			return polyhedra.ConvexHull3DMerged(cloud, *tolerance, style)
		}
		return polyhedra.ConvexHull3D(cloud, *tolerance, style)
	}

	switch *solid {
	case "tetrahedron":
		return polyhedra.NewTetrahedron(2, style), nil
	case "octahedron":
		return polyhedra.NewOctahedron(2, style), nil
	case "icosahedron":
		return polyhedra.NewIcosahedron(1.5, style), nil
	case "dodecahedron":
		return polyhedra.NewDodecahedron(1, style), nil
	case "cube":
		return polyhedra.NewCube(2, style), nil
	}
	return nil, fmt.Errorf("unknown solid %q", *solid)
}

func main() {
	flag.Parse()

	p, err := load()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Showing %v vertices, %v faces", p.NumVertices(), len(p.Faces()))

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("polyview")
	if err := ebiten.RunGame(NewGame(p)); err != nil {
		log.Fatal(err)
	}
}
