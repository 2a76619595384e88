package silvox

import (
	"runtime"

	"github.com/unixpickle/essentials"
)

// ReduceToSurface removes the voxels that are enclosed
// within their own layer.
//
// Layers are taken along m.Up. A voxel is kept if at least
// one of its four horizontal neighbors is empty; diagonal
// neighbors are ignored. Coordinates are returned
// unchanged, grouped by layer in order of first appearance.
func ReduceToSurface(m *Model) *Model {
	keys, layers := m.Layers()
	a, b := m.Up.planeIndices()

	kept := make([][]Coord, len(keys))
	essentials.ConcurrentMap(runtime.GOMAXPROCS(0), len(keys), func(i int) {
		kept[i] = layerSurface(layers[keys[i]], a, b)
	})

	res := &Model{Up: m.Up}
	for _, k := range kept {
		res.Coords = append(res.Coords, k...)
	}
	Logger().Debug("reduced to surface", "before", m.Len(), "after", res.Len())
	return res
}

func layerSurface(layer []Coord, a, b int) []Coord {
	occupied := make(map[[2]int]struct{}, len(layer))
	for _, c := range layer {
		occupied[[2]int{c[a], c[b]}] = struct{}{}
	}
	neighbors := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	var res []Coord
	for _, c := range layer {
		for _, d := range neighbors {
			if _, ok := occupied[[2]int{c[a] + d[0], c[b] + d[1]}]; !ok {
				res = append(res, c)
				break
			}
		}
	}
	return res
}
