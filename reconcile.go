package silvox

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// MaxWorldHeight is the tallest model most voxel game
// worlds can hold.
const MaxWorldHeight = 255

// Reconcile scales the taller of two silhouettes down to
// the height of the shorter one.
//
// The new width is truncated to an integer, preserving the
// aspect ratio of the scaled silhouette as closely as
// possible. Images of equal height are returned unchanged.
// If either silhouette is empty, two empty silhouettes are
// returned.
func Reconcile(a, b *image.Gray) (*image.Gray, *image.Gray) {
	ha, hb := a.Rect.Dy(), b.Rect.Dy()
	if ha == hb {
		return a, b
	}
	if ha == 0 || hb == 0 {
		empty := image.NewGray(image.Rect(0, 0, 0, 0))
		return empty, empty
	}
	if ha < hb {
		return a, scaleToHeight(b, ha)
	}
	return scaleToHeight(a, hb), b
}

// LimitHeight scales g down so that its height is exactly
// maxHeight, if it is taller than that.
func LimitHeight(g *image.Gray, maxHeight int) *image.Gray {
	if g.Rect.Dy() <= maxHeight {
		return g
	}
	return scaleToHeight(g, maxHeight)
}

func scaleToHeight(g *image.Gray, height int) *image.Gray {
	f := float64(height) / float64(g.Rect.Dy())
	return Resize(g, int(float64(g.Rect.Dx())*f), height)
}

// Resize resamples g to the given size with nearest
// neighbor sampling, so binary silhouettes stay binary.
func Resize(g *image.Gray, width, height int) *image.Gray {
	res := image.NewGray(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 || g.Rect.Empty() {
		return res
	}
	xdraw.NearestNeighbor.Scale(res, res.Rect, g, g.Rect, xdraw.Src, nil)
	return res
}
