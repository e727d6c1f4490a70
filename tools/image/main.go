package image

import (
	"flag"
	"fmt"

	"github.com/clktmr/assetc/header"
	"github.com/clktmr/assetc/imagegen"
	"github.com/clktmr/assetc/pixbuf"
	"github.com/clktmr/assetc/tools/internal/cli"
)

const usageString = `Image to C header converter.

Converts an image to raw RGBA8888 data and an image_descriptor_t.

Usage: %s [flags] <image> <header>

`

// Run executes the image command, args[0] being the command name.
func Run(args []string) error {
	flags := flag.NewFlagSet("image", flag.ContinueOnError)
	name := flags.String("variable-name", imagegen.DefaultName, "name of the generated C variable")
	formatter := flags.String("formatter", header.DefaultFormatter, "command to format the header in place, empty to disable")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, "image")
		flags.PrintDefaults()
	}

	files, err := cli.Parse(flags, args[1:])
	if err != nil {
		return err
	}
	if len(files) != 2 {
		flags.Usage()
		return cli.ErrUsage
	}
	imagefile, outfile := files[0], files[1]

	f, err := header.ParseCommand(*formatter)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	buf, err := pixbuf.Load(imagefile)
	if err != nil {
		return err
	}

	h, err := imagegen.Generate(buf, *name)
	if err != nil {
		return err
	}

	return header.Emit(outfile, h, f)
}

func Main(args []string) {
	cli.Exit(Run(args))
}
