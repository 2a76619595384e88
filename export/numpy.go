package export

import (
	"archive/zip"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/silvox"
	"github.com/unixpickle/silvox/output"
)

// DenseGrid is a boolean voxel grid covering the bounding
// box of a model.
type DenseGrid struct {
	Origin silvox.Coord
	Size   [3]int
	Data   []bool
}

// NewDenseGrid rasterizes a model into its bounding box.
func NewDenseGrid(m *silvox.Model) *DenseGrid {
	if m.Len() == 0 {
		return &DenseGrid{}
	}
	min, max := m.Bounds()
	var size [3]int
	for i := range size {
		size[i] = max[i] - min[i] + 1
	}
	g := &DenseGrid{
		Origin: min,
		Size:   size,
		Data:   make([]bool, size[0]*size[1]*size[2]),
	}
	for _, c := range m.Coords {
		*g.At(c) = true
	}
	return g
}

// At returns the cell of a model coordinate, which must be
// within the grid.
func (d *DenseGrid) At(c silvox.Coord) *bool {
	x, y, z := c[0]-d.Origin[0], c[1]-d.Origin[1], c[2]-d.Origin[2]
	return &d.Data[z+(y+x*d.Size[1])*d.Size[2]]
}

// Bytes returns the grid as one byte per cell, x major and
// z minor.
func (d *DenseGrid) Bytes() []byte {
	res := make([]byte, len(d.Data))
	for i, v := range d.Data {
		if v {
			res[i] = 1
		}
	}
	return res
}

// EncodeNumpy encodes the grid as a version 1.0 .npy array
// of booleans with shape (X, Y, Z).
//
// The header is padded with spaces so the data starts on a
// 64-byte boundary.
func EncodeNumpy(g *DenseGrid) []byte {
	const magic = "\x93NUMPY\x01\x00"
	dict := fmt.Sprintf("{'descr': '|b1', 'fortran_order': False, 'shape': (%d, %d, %d)}",
		g.Size[0], g.Size[1], g.Size[2])

	// magic, 2-byte length, dict, padding, trailing newline.
	headerLen := len(dict) + 1
	if rem := (len(magic) + 2 + headerLen) % 64; rem != 0 {
		headerLen += 64 - rem
	}
	res := make([]byte, 0, len(magic)+2+headerLen+len(g.Data))
	res = append(res, magic...)
	res = binary.LittleEndian.AppendUint16(res, uint16(headerLen))
	res = append(res, dict...)
	for len(res) < len(magic)+2+headerLen-1 {
		res = append(res, ' ')
	}
	res = append(res, '\n')
	return append(res, g.Bytes()...)
}

// WriteNumpy writes the model as an .npz archive holding a
// single array named voxels.npy.
func WriteNumpy(w io.Writer, m *silvox.Model) error {
	zipWriter := zip.NewWriter(w)
	fileWriter, err := zipWriter.Create("voxels.npy")
	if err != nil {
		return errors.Wrap(err, "write numpy")
	}
	if _, err := fileWriter.Write(EncodeNumpy(NewDenseGrid(m))); err != nil {
		return errors.Wrap(err, "write numpy")
	}
	return errors.Wrap(zipWriter.Close(), "write numpy")
}

// SaveNumpy writes the model to an .npz file.
func SaveNumpy(path string, m *silvox.Model) error {
	return output.WriteFile(path, func(w io.Writer) error {
		return WriteNumpy(w, m)
	})
}
