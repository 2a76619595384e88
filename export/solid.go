package export

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/silvox"
)

// ModelSolid is a model3d.Solid containing the unit cube of
// every voxel in a model.
type ModelSolid struct {
	set      map[silvox.Coord]struct{}
	min, max model3d.Coord3D
}

// NewModelSolid creates a solid for a non-empty model.
func NewModelSolid(m *silvox.Model) *ModelSolid {
	min, max := m.Bounds()
	return &ModelSolid{
		set: m.Set(),
		min: coordToPoint(min),
		max: coordToPoint(max).Add(model3d.XYZ(1, 1, 1)),
	}
}

// Min gets the minimum of the bounding box.
func (s *ModelSolid) Min() model3d.Coord3D {
	return s.min
}

// Max gets the maximum of the bounding box.
func (s *ModelSolid) Max() model3d.Coord3D {
	return s.max
}

// Contains checks if the point lies in a voxel.
func (s *ModelSolid) Contains(c model3d.Coord3D) bool {
	if !model3d.InBounds(s, c) {
		return false
	}
	key := silvox.Coord{
		int(math.Floor(c.X)),
		int(math.Floor(c.Y)),
		int(math.Floor(c.Z)),
	}
	_, ok := s.set[key]
	return ok
}

// SmoothMesh runs marching cubes over the model with the
// given grid spacing, producing a mesh without stair-step
// edges. An empty model gives an empty mesh.
func SmoothMesh(m *silvox.Model, delta float64) *model3d.Mesh {
	if m.Len() == 0 {
		return model3d.NewMesh()
	}
	return model3d.MarchingCubesSearch(NewModelSolid(m), delta, 8)
}
