package export

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unixpickle/silvox"
)

func TestDenseGrid(t *testing.T) {
	m := &silvox.Model{Coords: []silvox.Coord{{5, 1, 2}, {6, 1, 4}}}
	g := NewDenseGrid(m)
	assert.Equal(t, silvox.Coord{5, 1, 2}, g.Origin)
	assert.Equal(t, [3]int{2, 1, 3}, g.Size)
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 1}, g.Bytes())
}

func TestEncodeNumpy(t *testing.T) {
	m := &silvox.Model{Coords: []silvox.Coord{{0, 0, 0}, {1, 1, 1}}}
	data := EncodeNumpy(NewDenseGrid(m))
	require.Len(t, data, 0x80+8)
	header := string(data[:0x80])
	assert.Contains(t, header, "'shape': (2, 2, 2)")
	assert.Equal(t, byte('\n'), data[0x7f])
	assert.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 1}, data[0x80:])
	assert.Equal(t, "\x93NUMPY\x01\x00", string(data[:8]))
	assert.EqualValues(t, 0x80-10, binary.LittleEndian.Uint16(data[8:10]))
}

func TestEncodeNumpyLargeShape(t *testing.T) {
	const big = 1234567890123456789
	g := &DenseGrid{Size: [3]int{big, big, big}}
	data := EncodeNumpy(g)
	require.Zero(t, len(data)%64, "data starts on a 64-byte boundary")
	headerLen := int(binary.LittleEndian.Uint16(data[8:10]))
	require.Equal(t, len(data), 10+headerLen)
	assert.Contains(t, string(data), "'shape': (1234567890123456789, 1234567890123456789, 1234567890123456789)")
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestWriteNumpy(t *testing.T) {
	var buf bytes.Buffer
	m := &silvox.Model{Coords: []silvox.Coord{{0, 0, 0}}}
	require.NoError(t, WriteNumpy(&buf, m))

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, r.File, 1)
	assert.Equal(t, "voxels.npy", r.File[0].Name)

	f, err := r.File[0].Open()
	require.NoError(t, err)
	defer f.Close()
	contents, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, EncodeNumpy(NewDenseGrid(m)), contents)
}
