package silvox

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("binarizes and crops", func(t *testing.T) {
		img := grayFromRows([][]uint8{
			{255, 255, 255, 255},
			{255, 10, 200, 255},
			{255, 180, 181, 255},
			{255, 255, 255, 255},
		})
		res := Normalize(img, 180)
		expected := [][]uint8{
			{0},
			{0},
		}
		if diff := cmp.Diff(expected, grayRows(res)); diff != "" {
			t.Errorf("unexpected silhouette (-want +got):\n%s", diff)
		}
	})

	t.Run("kept columns may hold blank pixels", func(t *testing.T) {
		img := grayFromRows([][]uint8{
			{255, 255, 255, 255},
			{255, 10, 200, 255},
			{255, 100, 50, 255},
		})
		res := Normalize(img, 180)
		expected := [][]uint8{
			{0, 255},
			{0, 0},
		}
		if diff := cmp.Diff(expected, grayRows(res)); diff != "" {
			t.Errorf("unexpected silhouette (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps gray values without threshold", func(t *testing.T) {
		img := grayFromRows([][]uint8{
			{255, 255, 255},
			{255, 254, 100},
		})
		res := Normalize(img, NoThreshold)
		assert.Equal(t, [][]uint8{{254, 100}}, grayRows(res))
	})

	t.Run("out of range threshold skips binarization", func(t *testing.T) {
		img := grayFromRows([][]uint8{{200, 255}})
		assert.Equal(t, [][]uint8{{200}}, grayRows(Normalize(img, 256)))
		assert.Equal(t, [][]uint8{{200}}, grayRows(Normalize(img, -7)))
	})

	t.Run("fully blank image is empty", func(t *testing.T) {
		img := grayFromRows([][]uint8{
			{255, 255},
			{255, 255},
		})
		res := Normalize(img, 100)
		assert.Equal(t, 0, res.Rect.Dx())
		assert.Equal(t, 0, res.Rect.Dy())
	})

	t.Run("drops blank columns", func(t *testing.T) {
		img := grayFromRows([][]uint8{
			{0, 255, 255},
			{255, 0, 255},
		})
		res := Normalize(img, NoThreshold)
		assert.Equal(t, [][]uint8{{0, 255}, {255, 0}}, grayRows(res))
	})

	t.Run("transparent pixels are blank", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
		img.Set(1, 0, color.NRGBA{A: 255})
		res := Normalize(img, 180)
		assert.Equal(t, [][]uint8{{0}}, grayRows(res))
	})

	t.Run("color image", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(10, 10, 13, 12))
		for y := 10; y < 12; y++ {
			for x := 10; x < 13; x++ {
				img.Set(x, y, color.White)
			}
		}
		img.Set(11, 11, color.RGBA{R: 200, A: 255})
		res := Normalize(img, 180)
		assert.Equal(t, [][]uint8{{0}}, grayRows(res))
	})
}

func TestCropIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		g := randomGray(rng, 1+rng.Intn(12), 1+rng.Intn(12))
		once := Normalize(g, 128)
		twice := Normalize(once, 128)
		require.Equal(t, grayRows(once), grayRows(twice))

		noThresh := Crop(g)
		require.Equal(t, grayRows(noThresh), grayRows(Crop(noThresh)))
	}
}

func TestThresholdMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := randomGray(rng, 16, 16)
	for low := 0; low < 255; low += 15 {
		high := low + 10
		lo := Binarize(g, low)
		hi := Binarize(g, high)
		for i, v := range lo.Pix {
			if v == Solid {
				require.Equal(t, Solid, hi.Pix[i], "pixel %d", i)
			}
		}
	}
}

func TestGrayKeepsZeroOriginGray(t *testing.T) {
	g := solidGray(2, 2)
	assert.Same(t, g, Gray(g))
}

func randomGray(rng *rand.Rand, w, h int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		if rng.Intn(2) == 0 {
			g.Pix[i] = 255
		} else {
			g.Pix[i] = uint8(rng.Intn(256))
		}
	}
	return g
}
