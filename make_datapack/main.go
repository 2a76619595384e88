// Command make_datapack builds a 3D object from two
// silhouette pictures and writes it as a datapack of block
// placement commands.
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
	"github.com/unixpickle/silvox/mcfunction"
)

func main() {
	pack := mcfunction.DefaultPack()
	opts := silvox.DefaultOptions()
	opts.MaxHeight = silvox.MaxWorldHeight

	var outDir string
	var upAxis string
	var bedrock bool
	var verbose bool

	flag.StringVar(&outDir, "path", "minhya", "output directory of the datapack")
	flag.StringVar(&pack.Namespace, "namespace", pack.Namespace, "namespace of the datapack")
	flag.StringVar(&pack.Block, "block", pack.Block, "block to build with")
	flag.IntVar(&pack.PackFormat, "pack-format", pack.PackFormat, "pack_format of pack.mcmeta")
	flag.BoolVar(&pack.Batched, "batch", false, "split commands into batched sub-functions")
	flag.IntVar(&pack.BatchSize, "batch-size", pack.BatchSize, "commands per batch")
	flag.BoolVar(&bedrock, "bedrock", false, "write a Bedrock behavior pack (always batched)")
	flag.IntVar(&opts.Threshold, "threshold", opts.Threshold, "threshold of the images (0-255)")
	flag.BoolVar(&opts.CutSurface, "cut", false, "remove interior blocks")
	flag.StringVar(&upAxis, "up", "y", "up axis of the emitted coordinates (y or z)")
	flag.BoolVar(&verbose, "verbose", false, "log pipeline details")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <xz_image> <yz_image>")
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
	if bedrock {
		pack.Edition = mcfunction.Bedrock
	}
	var err error
	opts.Up, err = silvox.ParseAxis(upAxis)
	essentials.Must(err)

	xzImg, err := imageio.ReadImage(flag.Args()[0])
	essentials.Must(err)
	yzImg, err := imageio.ReadImage(flag.Args()[1])
	essentials.Must(err)

	log.Println("Building model ...")
	model := silvox.Build(xzImg, yzImg, opts)
	log.Printf("Writing %d blocks to %s ...", model.Len(), outDir)
	essentials.Must(pack.Write(outDir, model))
}
