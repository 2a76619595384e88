package silvox

import (
	"fmt"
	"image"
	"runtime"

	"github.com/unixpickle/essentials"
)

// Intersect builds a voxel model from two silhouettes of
// equal height, one viewed along the y axis (xz) and one
// viewed along the x axis (yz).
//
// A voxel exists at (x, y) in layer z if and only if both
// silhouettes are solid at column x (resp. y) of image row
// z. Image row 0 is the top of the model, so it becomes
// layer height. Voxels are emitted layer by layer from the
// top, x before y within each layer.
//
// Intersect panics if the heights differ.
func Intersect(xz, yz *image.Gray, up Axis) *Model {
	height := xz.Rect.Dy()
	if yz.Rect.Dy() != height {
		panic(fmt.Sprintf("intersect: silhouette heights differ (%d and %d)",
			height, yz.Rect.Dy()))
	}
	xCols := solidColumns(xz)
	yCols := solidColumns(yz)

	offsets := make([]int, height+1)
	for row := 0; row < height; row++ {
		offsets[row+1] = offsets[row] + len(xCols[row])*len(yCols[row])
	}
	total := offsets[height]

	// Each row owns coords[offsets[row]:offsets[row+1]].
	coords := make([]Coord, total)
	essentials.ConcurrentMap(runtime.GOMAXPROCS(0), height, func(row int) {
		layer := height - row
		out := coords[offsets[row]:offsets[row+1]]
		var i int
		for _, x := range xCols[row] {
			for _, y := range yCols[row] {
				if up == UpY {
					out[i] = Coord{x, layer, y}
				} else {
					out[i] = Coord{x, y, layer}
				}
				i++
			}
		}
	})

	res := &Model{Up: up, Coords: coords}
	Logger().Debug("intersected silhouettes", "height", height, "voxels", total)
	return res
}

// BuildModel brings two silhouettes to a common height and
// intersects them.
func BuildModel(xz, yz *image.Gray, up Axis) *Model {
	xz, yz = Reconcile(xz, yz)
	return Intersect(xz, yz, up)
}

// solidColumns lists, for every row, the columns holding a
// non-blank pixel.
func solidColumns(g *image.Gray) [][]int {
	res := make([][]int, g.Rect.Dy())
	for y := range res {
		for x, v := range grayRow(g, y) {
			if !IsBlank(v) {
				res[y] = append(res[y], x)
			}
		}
	}
	return res
}
