package descriptor

import (
	"flag"
	"fmt"

	"github.com/clktmr/assetc/header"
	"github.com/clktmr/assetc/imagegen"
	"github.com/clktmr/assetc/tools/internal/cli"
)

const usageString = `Writes the image_descriptor.h header declaring the types used by
headers generated with the image command.

Usage: %s [flags] <header>

`

// Run executes the descriptor command, args[0] being the command name.
func Run(args []string) error {
	flags := flag.NewFlagSet("descriptor", flag.ContinueOnError)
	formatter := flags.String("formatter", header.DefaultFormatter, "command to format the header in place, empty to disable")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), usageString, "descriptor")
		flags.PrintDefaults()
	}

	files, err := cli.Parse(flags, args[1:])
	if err != nil {
		return err
	}
	if len(files) != 1 {
		flags.Usage()
		return cli.ErrUsage
	}

	f, err := header.ParseCommand(*formatter)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	return header.Emit(files[0], imagegen.SchemaHeader(), f)
}

func Main(args []string) {
	cli.Exit(Run(args))
}
