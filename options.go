package silvox

import "image"

// DefaultThreshold is the binarization threshold used by
// the command-line tools.
const DefaultThreshold = 180

// Options configures Build.
type Options struct {
	// Threshold is passed to Normalize. Use NoThreshold for
	// images which are already binary.
	Threshold int

	// CutSurface hollows the model with ReduceToSurface.
	CutSurface bool

	// Up selects the axis order of the emitted coordinates.
	Up Axis

	// MaxHeight, if non-zero, caps the common silhouette
	// height. Both silhouettes are scaled down uniformly when
	// it is exceeded.
	MaxHeight int
}

// DefaultOptions returns the options used when a caller
// has no preference.
func DefaultOptions() *Options {
	return &Options{
		Threshold: DefaultThreshold,
		Up:        UpZ,
	}
}

// Build runs the full pipeline on two decoded pictures.
func Build(xzImg, yzImg image.Image, opts *Options) *Model {
	if opts == nil {
		opts = DefaultOptions()
	}
	xz := Normalize(xzImg, opts.Threshold)
	yz := Normalize(yzImg, opts.Threshold)
	xz, yz = Reconcile(xz, yz)
	if opts.MaxHeight > 0 && xz.Rect.Dy() > opts.MaxHeight {
		xz = LimitHeight(xz, opts.MaxHeight)
		yz = LimitHeight(yz, opts.MaxHeight)
	}
	model := Intersect(xz, yz, opts.Up)
	if opts.CutSurface {
		model = ReduceToSurface(model)
	}
	return model
}
