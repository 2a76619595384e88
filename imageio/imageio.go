// Package imageio reads and writes the pictures used by the
// silhouette tools.
package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"

	"github.com/pkg/errors"
	"github.com/unixpickle/silvox/output"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError is returned when an input picture cannot be
// opened or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (d *DecodeError) Error() string {
	return fmt.Sprintf("decode image %s: %v", d.Path, d.Err)
}

func (d *DecodeError) Unwrap() error {
	return d.Err
}

// ReadImage decodes the picture at path. PNG, JPEG, GIF,
// BMP, TIFF and WebP are supported.
func ReadImage(path string) (image.Image, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer r.Close()
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// WriteImage encodes img to path, as JPEG if the extension
// is .jpg or .jpeg and as PNG otherwise. Failures are
// returned as an *output.Error.
func WriteImage(path string, img image.Image) error {
	if img.Bounds().Empty() {
		return &output.Error{Path: path, Err: errors.New("image is empty")}
	}
	return output.WriteFile(path, func(w io.Writer) error {
		var err error
		switch strings.ToLower(filepath.Ext(path)) {
		case ".jpg", ".jpeg":
			err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		default:
			err = png.Encode(w, img)
		}
		return errors.Wrap(err, "encode")
	})
}
