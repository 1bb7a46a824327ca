// hull computes the convex hull of one or more point cloud files.
//
// Each argument is a text file with one "x y z" point per line. For every
// file, hull logs the size of the hull and optionally writes it next to the
// input as an OFF mesh, a binary STL file or a PNG snapshot.
//
// With -solid, a platonic solid is generated instead of reading files.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/akmonengine/polyhedra"
	"github.com/akmonengine/polyhedra/geom"
	"github.com/akmonengine/polyhedra/meshio"
	"github.com/akmonengine/polyhedra/qhull"
	"github.com/akmonengine/polyhedra/render"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	tolerance = flag.Float64("tolerance", qhull.DefaultTolerance, "Distance under which a point counts as lying on a facet")
	merge     = flag.Bool("merge", false, "Merge coplanar facets into polygonal faces")
	workers   = flag.Int("workers", 0, "Number of hulls built concurrently (default is the number of CPUs)")

	solid = flag.String("solid", "", "Generate a platonic solid (tetrahedron, octahedron, icosahedron, dodecahedron, cube) instead of reading files")
	edge  = flag.Float64("edge", 1, "Edge length of the generated solid")

	writeOFF = flag.Bool("off", false, "Write an OFF mesh per input")
	writeSTL = flag.Bool("stl", false, "Write a binary STL file per input")
	writePNG = flag.Bool("png", false, "Write a PNG snapshot per input")
	size     = flag.Int("size", 512, "Width and height of PNG snapshots")
)

func main() {
	flag.Parse()

	if !*writeOFF && !*writeSTL && !*writePNG {
		log.Printf("-off, -stl or -png must be supplied to generate output. Logging hull statistics only.")
	}

	if *solid != "" {
		vertices, faces, err := solidTable(*solid, *edge)
		check("solid: %v", err)

		p, err := polyhedra.NewPolyhedron(vertices, faces)
		check("NewPolyhedron: %v", err)

		log.Printf("%v: %v vertices, %v faces, %v edges", *solid, p.NumVertices(), len(p.Faces()), len(p.UniqueEdges()))
		output(*solid, p)
		return
	}

	var names []string
	var clouds [][]mgl64.Vec3
	for _, arg := range flag.Args() {
		f, err := os.Open(arg)
		check("Open: %v", err)
		points, err := meshio.ReadPoints(f)
		f.Close()
		check("%v: %v", arg, err)

		log.Printf("Read %v points from %q", len(points), arg)
		names = append(names, strings.TrimSuffix(arg, filepath.Ext(arg)))
		clouds = append(clouds, points)
	}

	results := qhull.BuildAll(clouds, *workers, qhull.WithTolerance(*tolerance))

	for i, result := range results {
		if result.Err != nil {
			log.Printf("Skipping %q: %v", names[i], result.Err)
			continue
		}
		h := result.Hull

		var extract []polyhedra.ExtractOption
		if *merge {
			extract = append(extract, polyhedra.MergeCoplanar())
		}
		vertices, faces := polyhedra.ExtractFaces(h, extract...)

		p, err := polyhedra.NewPolyhedron(vertices, faces)
		check("NewPolyhedron: %v", err)

		log.Printf("%v: %v of %v points on the hull, %v faces, %v edges, volume %.6g, area %.6g",
			names[i], p.NumVertices(), len(clouds[i]), len(faces), len(p.UniqueEdges()), h.Volume(), h.SurfaceArea())
		output(names[i], p)
	}

	log.Println("Done.")
}

func solidTable(name string, edge float64) ([]mgl64.Vec3, [][]int, error) {
	tables := map[string]func(float64) ([]mgl64.Vec3, [][]int){
		"tetrahedron":  polyhedra.TetrahedronTable,
		"octahedron":   polyhedra.OctahedronTable,
		"icosahedron":  polyhedra.IcosahedronTable,
		"dodecahedron": polyhedra.DodecahedronTable,
		"cube":         polyhedra.CubeTable,
	}

	table, ok := tables[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown solid %q", name)
	}
	vertices, faces := table(edge)
	return vertices, faces, nil
}

func output(baseName string, p *polyhedra.Polyhedron) {
	if *writeOFF {
		name := baseName + ".off"
		log.Printf("Writing %q...", name)
		err := writeFile(name, func(f *os.File) error {
			return meshio.WriteOFF(f, p.Vertices(), p.Faces())
		})
		check("WriteOFF: %v", err)
	}

	if *writeSTL {
		name := baseName + ".stl"
		log.Printf("Writing %q...", name)
		err := writeFile(name, func(f *os.File) error {
			return meshio.WriteSTL(f, filepath.Base(baseName), p.Vertices(), p.Faces())
		})
		check("WriteSTL: %v", err)
	}

	if *writePNG {
		name := baseName + ".png"
		log.Printf("Writing %q...", name)

		box := geom.NewAABB(p.Vertices())
		radius := math.Max(box.Diagonal()/2, 1e-3)
		camera := render.NewCamera(4*radius, mgl64.DegToRad(75), mgl64.DegToRad(30))
		camera.Eye = camera.Eye.Add(box.Center())
		camera.Target = box.Center()
		camera.Far = 16 * radius

		canvas := render.NewCanvas(*size, *size, camera)
		canvas.DrawPolyhedron(p)
		check("SavePNG: %v", canvas.SavePNG(name))
	}
}

func writeFile(name string, write func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func check(fmtStr string, args ...interface{}) {
	err := args[len(args)-1]
	if err != nil {
		log.Fatalf(fmtStr, args...)
	}
}
