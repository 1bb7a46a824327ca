package meshio

import (
	"encoding/binary"
	"io"

	"github.com/akmonengine/polyhedra/geom"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

const stlHeaderSize = 80

// stlTri is one binary STL record.
type stlTri struct {
	// Normal plus three vertex triplets: [3]float32{x,y,z}
	N, V1, V2, V3 [3]float32
	_             uint16 // unused attribute byte count
}

// WriteSTL writes a binary STL file. Every face is fan triangulated from its
// first corner; each triangle carries the normal of its face.
func WriteSTL(w io.Writer, name string, vertices []mgl64.Vec3, faces [][]int) error {
	var tris []stlTri
	for i, face := range faces {
		if len(face) < 3 {
			return errors.Errorf("stl: face %d has %d vertices", i, len(face))
		}
		points := make([]mgl64.Vec3, len(face))
		for j, index := range face {
			if index < 0 || index >= len(vertices) {
				return errors.Errorf("stl: face %d references vertex %d of %d", i, index, len(vertices))
			}
			points[j] = vertices[index]
		}

		normal := toFloat32(geom.NewellNormal(points))
		for j := 2; j < len(points); j++ {
			tris = append(tris, stlTri{
				N:  normal,
				V1: toFloat32(points[0]),
				V2: toFloat32(points[j-1]),
				V3: toFloat32(points[j]),
			})
		}
	}

	var header [stlHeaderSize]byte
	copy(header[:], name)

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrap(err, "stl: header")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return errors.Wrap(err, "stl: count")
	}
	if err := binary.Write(w, binary.LittleEndian, tris); err != nil {
		return errors.Wrap(err, "stl: triangles")
	}
	return nil
}

func toFloat32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
