package silvox

import "github.com/pkg/errors"

// Axis selects which coordinate of a Coord points up.
type Axis int

const (
	// UpZ emits (x, y, z) with z pointing up.
	UpZ Axis = iota

	// UpY emits (x, z, y) with the second coordinate pointing
	// up, as most voxel game worlds expect.
	UpY
)

// ParseAxis parses "z" or "y".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "z", "Z":
		return UpZ, nil
	case "y", "Y":
		return UpY, nil
	}
	return 0, errors.Errorf("parse axis: unknown up axis %q", s)
}

func (a Axis) String() string {
	if a == UpY {
		return "y"
	}
	return "z"
}

// Index returns the position of the up coordinate within
// a Coord.
func (a Axis) Index() int {
	if a == UpY {
		return 1
	}
	return 2
}

// planeIndices returns the positions of the two horizontal
// coordinates within a Coord.
func (a Axis) planeIndices() (int, int) {
	if a == UpY {
		return 0, 2
	}
	return 0, 1
}

// Coord is an integer voxel coordinate.
type Coord [3]int

// Model is an ordered list of voxels.
//
// Up records which axis was used when the model was built,
// and therefore which axis ReduceToSurface layers along.
type Model struct {
	Up     Axis
	Coords []Coord
}

// Len returns the number of voxels.
func (m *Model) Len() int {
	return len(m.Coords)
}

// Bounds returns the inclusive minimum and maximum of the
// voxel coordinates. The result is meaningless for an
// empty model.
func (m *Model) Bounds() (min, max Coord) {
	if len(m.Coords) == 0 {
		return
	}
	min, max = m.Coords[0], m.Coords[0]
	for _, c := range m.Coords[1:] {
		for i, v := range c {
			if v < min[i] {
				min[i] = v
			}
			if v > max[i] {
				max[i] = v
			}
		}
	}
	return
}

// Layers groups voxels by their up coordinate.
//
// The layer keys are returned in order of first
// appearance, and each layer keeps the original order of
// its voxels.
func (m *Model) Layers() (keys []int, layers map[int][]Coord) {
	idx := m.Up.Index()
	layers = map[int][]Coord{}
	for _, c := range m.Coords {
		k := c[idx]
		if _, ok := layers[k]; !ok {
			keys = append(keys, k)
		}
		layers[k] = append(layers[k], c)
	}
	return keys, layers
}

// Set returns a membership set of the voxels.
func (m *Model) Set() map[Coord]struct{} {
	res := make(map[Coord]struct{}, len(m.Coords))
	for _, c := range m.Coords {
		res[c] = struct{}{}
	}
	return res
}
