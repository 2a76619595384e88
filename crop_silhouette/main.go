// Command crop_silhouette converts a picture into a black
// and white silhouette and cuts off its blank margins.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/silvox"
	"github.com/unixpickle/silvox/imageio"
)

func main() {
	var threshold int
	var verbose bool

	flag.IntVar(&threshold, "threshold", silvox.DefaultThreshold,
		"gray level (0-255) at or below which pixels are solid; out of range keeps gray values")
	flag.BoolVar(&verbose, "verbose", false, "log pipeline details")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <input> <output>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 2 {
		flag.Usage()
	}
	if verbose {
		silvox.SetLogger(slog.Default())
	}

	inPath, outPath := flag.Args()[0], flag.Args()[1]

	img, err := imageio.ReadImage(inPath)
	essentials.Must(err)
	res := silvox.Normalize(img, threshold)
	if res.Rect.Empty() {
		essentials.Die("image is entirely blank:", inPath)
	}
	log.Printf("Cropped %s to %dx%d", inPath, res.Rect.Dx(), res.Rect.Dy())
	essentials.Must(imageio.WriteImage(outPath, res))
}
