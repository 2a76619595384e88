// Command export_model builds a 3D object from two
// silhouette pictures and saves it as geometry or as a
// voxel array.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/silvox"
	"github.com/unixpickle/silvox/export"
	"github.com/unixpickle/silvox/imageio"
)

func main() {
	opts := silvox.DefaultOptions()

	var format string
	var upAxis string
	var delta float64
	var verbose bool

	flag.StringVar(&format, "format", "stl", "output format: stl, smooth-stl, npz or xyz")
	flag.IntVar(&opts.Threshold, "threshold", opts.Threshold, "threshold of the images (0-255)")
	flag.BoolVar(&opts.CutSurface, "cut", false, "remove interior voxels")
	flag.StringVar(&upAxis, "up", "z", "up axis of the emitted coordinates (y or z)")
	flag.Float64Var(&delta, "delta", 0.25, "marching cubes spacing for smooth-stl")
	flag.BoolVar(&verbose, "verbose", false, "log pipeline details")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <xz_image> <yz_image> <output>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 3 {
		flag.Usage()
	}
	if verbose {
		silvox.SetLogger(slog.Default())
	}
	var err error
	opts.Up, err = silvox.ParseAxis(upAxis)
	essentials.Must(err)

	xzImg, err := imageio.ReadImage(flag.Args()[0])
	essentials.Must(err)
	yzImg, err := imageio.ReadImage(flag.Args()[1])
	essentials.Must(err)

	model := silvox.Build(xzImg, yzImg, opts)
	outPath := flag.Args()[2]
	log.Printf("Saving %d voxels to %s ...", model.Len(), outPath)

	switch format {
	case "stl":
		err = export.SaveSTL(outPath, model)
	case "smooth-stl":
		err = export.SaveSmoothSTL(outPath, model, delta)
	case "npz":
		err = export.SaveNumpy(outPath, model)
	case "xyz":
		err = export.SaveXYZ(outPath, model)
	default:
		essentials.Die("unknown format:", format)
	}
	essentials.Must(err)
}
