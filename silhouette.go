// Package silvox reconstructs voxel models from a pair of
// orthogonal silhouette images.
//
// The pipeline has four stages: Normalize turns a picture
// into a cropped binary silhouette, Reconcile brings two
// silhouettes to a common height, Intersect combines them
// into a voxel model, and ReduceToSurface hollows the
// model out layer by layer.
package silvox

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	// Blank is the gray value of an empty silhouette pixel.
	Blank uint8 = 0xff

	// Solid is the gray value a binarized pixel takes when it
	// is at or below the threshold.
	Solid uint8 = 0

	// NoThreshold disables binarization in Normalize.
	NoThreshold = -1
)

// IsBlank reports whether a silhouette pixel is empty.
//
// Only pure white counts as blank, so a silhouette that
// was not binarized treats every gray level as solid.
func IsBlank(v uint8) bool {
	return v == Blank
}

// ValidThreshold reports whether t can be used to
// binarize an image.
func ValidThreshold(t int) bool {
	return t >= 0 && t <= 0xff
}

// Gray converts an image to 8-bit grayscale.
//
// Pixels are composited onto a white background first, so
// transparent regions become blank instead of black.
func Gray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	b := img.Bounds()
	bounds := image.Rect(0, 0, b.Dx(), b.Dy())
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, b.Min, draw.Over)

	res := image.NewGray(bounds)
	draw.Draw(res, bounds, flat, image.Point{}, draw.Src)
	return res
}

// Normalize produces a cropped silhouette from an image.
//
// If threshold is in [0, 255], pixels above it become
// Blank and the rest become Solid. Otherwise the gray
// values are kept as they are. Rows and then columns that
// are entirely blank are removed afterwards.
//
// A fully blank image yields a 0x0 result.
func Normalize(img image.Image, threshold int) *image.Gray {
	g := Gray(img)
	if ValidThreshold(threshold) {
		g = Binarize(g, threshold)
	} else if threshold != NoThreshold {
		Logger().Warn("threshold out of range, skipping binarization",
			"threshold", threshold)
	}
	res := Crop(g)
	Logger().Debug("normalized silhouette",
		"width", res.Rect.Dx(), "height", res.Rect.Dy())
	return res
}

// Binarize maps every pixel to Blank or Solid depending on
// whether it is above threshold.
func Binarize(g *image.Gray, threshold int) *image.Gray {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	res := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := grayRow(g, y)
		dst := grayRow(res, y)
		for x, v := range src {
			if int(v) > threshold {
				dst[x] = Blank
			} else {
				dst[x] = Solid
			}
		}
	}
	return res
}

// Crop removes every row that is entirely blank, then
// every column of the remaining rows that is entirely
// blank.
//
// Cropping is idempotent.
func Crop(g *image.Gray) *image.Gray {
	w, h := g.Rect.Dx(), g.Rect.Dy()

	var rows []int
	for y := 0; y < h; y++ {
		for _, v := range grayRow(g, y) {
			if !IsBlank(v) {
				rows = append(rows, y)
				break
			}
		}
	}

	keepCol := make([]bool, w)
	var numCols int
	for _, y := range rows {
		for x, v := range grayRow(g, y) {
			if !keepCol[x] && !IsBlank(v) {
				keepCol[x] = true
				numCols++
			}
		}
	}

	if len(rows) == 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	res := image.NewGray(image.Rect(0, 0, numCols, len(rows)))
	for i, y := range rows {
		src := grayRow(g, y)
		dst := grayRow(res, i)[:0]
		for x, keep := range keepCol {
			if keep {
				dst = append(dst, src[x])
			}
		}
	}
	return res
}

// grayRow returns the pixels of row y, counted from the top
// of the image bounds.
func grayRow(g *image.Gray, y int) []uint8 {
	start := g.PixOffset(g.Rect.Min.X, g.Rect.Min.Y+y)
	return g.Pix[start : start+g.Rect.Dx()]
}
