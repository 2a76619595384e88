// Package export converts voxel models into geometry and
// array formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/silvox"
	"github.com/unixpickle/silvox/output"
)

// cubeFaces lists, for every face of a unit cube, the
// direction of the neighbor sharing it and a corner plus
// two edges whose cross product is the outward normal.
var cubeFaces = []struct {
	Neighbor silvox.Coord
	Origin   model3d.Coord3D
	U, V     model3d.Coord3D
}{
	{silvox.Coord{1, 0, 0}, model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0), model3d.XYZ(0, 0, 1)},
	{silvox.Coord{-1, 0, 0}, model3d.XYZ(0, 0, 0), model3d.XYZ(0, 0, 1), model3d.XYZ(0, 1, 0)},
	{silvox.Coord{0, 1, 0}, model3d.XYZ(0, 1, 0), model3d.XYZ(0, 0, 1), model3d.XYZ(1, 0, 0)},
	{silvox.Coord{0, -1, 0}, model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 0, 1)},
	{silvox.Coord{0, 0, 1}, model3d.XYZ(0, 0, 1), model3d.XYZ(1, 0, 0), model3d.XYZ(0, 1, 0)},
	{silvox.Coord{0, 0, -1}, model3d.XYZ(0, 0, 0), model3d.XYZ(0, 1, 0), model3d.XYZ(1, 0, 0)},
}

// Mesh creates a blocky mesh with a unit cube for every
// voxel. Faces shared by two voxels are left out, so a
// solid model yields a closed surface.
func Mesh(m *silvox.Model) *model3d.Mesh {
	set := m.Set()
	mesh := model3d.NewMesh()
	for _, c := range m.Coords {
		corner := coordToPoint(c)
		for _, f := range cubeFaces {
			n := silvox.Coord{c[0] + f.Neighbor[0], c[1] + f.Neighbor[1], c[2] + f.Neighbor[2]}
			if _, ok := set[n]; ok {
				continue
			}
			o := corner.Add(f.Origin)
			mesh.Add(&model3d.Triangle{o, o.Add(f.U), o.Add(f.U).Add(f.V)})
			mesh.Add(&model3d.Triangle{o, o.Add(f.U).Add(f.V), o.Add(f.V)})
		}
	}
	return mesh
}

// WriteSTL writes the blocky mesh of a model as binary STL.
func WriteSTL(w io.Writer, m *silvox.Model) error {
	return essentials.AddCtx("write STL", model3d.WriteSTL(w, Mesh(m).TriangleSlice()))
}

// SaveSTL writes the blocky mesh of a model to an STL file.
func SaveSTL(path string, m *silvox.Model) error {
	return output.WriteFile(path, func(w io.Writer) error {
		return WriteSTL(w, m)
	})
}

// SaveSmoothSTL writes a smoothed mesh of a model to an STL
// file.
func SaveSmoothSTL(path string, m *silvox.Model, delta float64) error {
	mesh := SmoothMesh(m, delta)
	return output.WriteFile(path, func(w io.Writer) error {
		return essentials.AddCtx("write STL", model3d.WriteSTL(w, mesh.TriangleSlice()))
	})
}

// WriteXYZ writes one "x y z" line per voxel.
func WriteXYZ(w io.Writer, m *silvox.Model) error {
	bw := bufio.NewWriter(w)
	for _, c := range m.Coords {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", c[0], c[1], c[2]); err != nil {
			return essentials.AddCtx("write XYZ", err)
		}
	}
	return essentials.AddCtx("write XYZ", bw.Flush())
}

// SaveXYZ writes the voxel list to a file.
func SaveXYZ(path string, m *silvox.Model) error {
	return output.WriteFile(path, func(w io.Writer) error {
		return WriteXYZ(w, m)
	})
}

func coordToPoint(c silvox.Coord) model3d.Coord3D {
	return model3d.XYZ(float64(c[0]), float64(c[1]), float64(c[2]))
}
