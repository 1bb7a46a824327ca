package render

import (
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/akmonengine/polyhedra"
	"github.com/akmonengine/polyhedra/geom"
	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
)

const (
	DefaultFillColor   = "#58c4dd"
	DefaultStrokeColor = "#ffffff"
	DefaultVertexColor = "#ffffff"
	DefaultBackground  = "#000000"
	DefaultDotRadius   = 3.0
)

// Canvas rasterizes polygons seen through a Camera with the painter's algorithm.
//
// Style keys read from polygon styles:
//   - fill_color, fill_opacity
//   - stroke_color, stroke_width, stroke_opacity
//   - shade_in_3d: darken faces turned away from the camera
//
// Graph styles read vertex_type ("dot3d" draws dots), vertex_color, radius and
// edge_config (a nested style with the stroke keys).
type Canvas struct {
	Camera Camera

	ctx        *gg.Context
	width      int
	height     int
	background color.Color
}

// NewCanvas creates a canvas cleared to the default background.
func NewCanvas(width, height int, camera Camera) *Canvas {
	c := &Canvas{
		Camera:     camera,
		ctx:        gg.NewContext(width, height),
		width:      width,
		height:     height,
		background: mustColor(DefaultBackground),
	}
	c.Clear()
	return c
}

// SetBackground sets the clear color, as "#rrggbb" or a CSS color name.
func (c *Canvas) SetBackground(name string) error {
	clr, err := ParseColor(name)
	if err != nil {
		return err
	}
	c.background = clr
	return nil
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	c.ctx.SetColor(c.background)
	c.ctx.Clear()
}

type projected struct {
	polygon *polyhedra.Polygon
	depth   float64
}

// DrawPolygons draws polygons back to front. Polygons with a vertex behind
// the camera are skipped.
func (c *Canvas) DrawPolygons(polygons []*polyhedra.Polygon) {
	queue := make([]projected, 0, len(polygons))
	for _, p := range polygons {
		if len(p.Points) < 3 {
			continue
		}
		queue = append(queue, projected{polygon: p, depth: c.Camera.Depth(geom.Centroid(p.Points))})
	}

	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].depth > queue[j].depth
	})

	for _, q := range queue {
		c.drawPolygon(q.polygon)
	}
}

func (c *Canvas) drawPolygon(p *polyhedra.Polygon) {
	c.ctx.NewSubPath()
	for _, point := range p.Points {
		x, y, ok := c.Camera.Project(point, c.width, c.height)
		if !ok {
			c.ctx.ClearPath()
			return
		}
		c.ctx.LineTo(x, y)
	}
	c.ctx.ClosePath()

	fill := styleColor(p.Style, "fill_color", DefaultFillColor)
	if p.Style.Bool("shade_in_3d", false) {
		fill = shade(fill, c.facing(p.Points))
	}
	c.setColor(fill, p.Style.Float("fill_opacity", 1))
	c.ctx.FillPreserve()

	width := p.Style.Float("stroke_width", 0)
	if opacity := p.Style.Float("stroke_opacity", 1); width > 0 && opacity > 0 {
		c.setColor(styleColor(p.Style, "stroke_color", DefaultStrokeColor), opacity)
		c.ctx.SetLineWidth(width)
		c.ctx.Stroke()
	}
	c.ctx.ClearPath()
}

// facing returns |cos| of the angle between the polygon normal and the view ray.
func (c *Canvas) facing(points []mgl64.Vec3) float64 {
	normal := geom.NewellNormal(points)
	ray := c.Camera.Eye.Sub(geom.Centroid(points))
	if normal.LenSqr() == 0 || ray.LenSqr() == 0 {
		return 1
	}
	return math.Abs(normal.Dot(ray.Normalize()))
}

// DrawGraph draws the edges then the vertices of a graph.
func (c *Canvas) DrawGraph(g *polyhedra.Graph) {
	edge := g.Config.Sub("edge_config")
	if opacity := edge.Float("stroke_opacity", 1); opacity > 0 {
		c.setColor(styleColor(edge, "stroke_color", DefaultStrokeColor), opacity)
		c.ctx.SetLineWidth(edge.Float("stroke_width", 1))
		for _, e := range g.Edges {
			x1, y1, ok1 := c.Camera.Project(g.Vertices[e[0]].Position, c.width, c.height)
			x2, y2, ok2 := c.Camera.Project(g.Vertices[e[1]].Position, c.width, c.height)
			if ok1 && ok2 {
				c.ctx.DrawLine(x1, y1, x2, y2)
				c.ctx.Stroke()
			}
		}
	}

	if g.Config.String("vertex_type", "") != "dot3d" {
		return
	}
	c.setColor(styleColor(g.Config, "vertex_color", DefaultVertexColor), g.Config.Float("vertex_opacity", 1))
	radius := g.Config.Float("radius", DefaultDotRadius)
	for _, v := range g.Vertices {
		if x, y, ok := c.Camera.Project(v.Position, c.width, c.height); ok {
			c.ctx.DrawCircle(x, y, radius)
			c.ctx.Fill()
		}
	}
}

// DrawPolyhedron draws the faces then the graph of p.
func (c *Canvas) DrawPolyhedron(p *polyhedra.Polyhedron) {
	c.DrawPolygons(p.Polygons())
	c.DrawGraph(p.Graph())
}

// Image returns the canvas content.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}

func (c *Canvas) setColor(clr color.RGBA, opacity float64) {
	opacity = math.Max(0, math.Min(1, opacity))
	c.ctx.SetRGBA(float64(clr.R)/255, float64(clr.G)/255, float64(clr.B)/255, opacity)
}

// shade scales a color by a brightness between 40% and 100%.
func shade(clr color.RGBA, facing float64) color.RGBA {
	k := 0.4 + 0.6*facing
	return color.RGBA{
		R: uint8(float64(clr.R) * k),
		G: uint8(float64(clr.G) * k),
		B: uint8(float64(clr.B) * k),
		A: clr.A,
	}
}

func styleColor(style polyhedra.Config, key, fallback string) color.RGBA {
	if clr, err := ParseColor(style.String(key, fallback)); err == nil {
		return clr
	}
	return mustColor(fallback)
}

// ParseColor reads "#rgb", "#rrggbb" or a CSS color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		if clr, ok := colornames.Map[s]; ok {
			return clr, nil
		}
		return color.RGBA{}, fmt.Errorf("render: unknown color %q", s)
	}

	digits := s[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	rgb, err := hex.DecodeString(digits)
	if err != nil || len(rgb) != 3 {
		return color.RGBA{}, fmt.Errorf("render: bad hex color %q", s)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func mustColor(s string) color.RGBA {
	clr, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return clr
}
